package contact

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var notifyTemplate = template.Must(template.New("contact").Parse(`<h2>New message from {{.Name}}</h2>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
<p><strong>Received:</strong> {{.Received}}</p>
<hr>
<p style="white-space: pre-wrap">{{.Message}}</p>
`))

type notifyData struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Received string
}

// NotifyOwnerUseCase mails the site owner about a new contact message.
type NotifyOwnerUseCase struct {
	mailer  service.Mailer
	ownerTo string
	logger  logger.Logger
}

func NewNotifyOwnerUseCase(m service.Mailer, ownerTo string, log logger.Logger) *NotifyOwnerUseCase {
	return &NotifyOwnerUseCase{mailer: m, ownerTo: ownerTo, logger: log}
}

func (uc *NotifyOwnerUseCase) Execute(ctx context.Context, m *contact.Message) error {
	ctx, span := tracer.Start(ctx, "NotifyOwner")
	defer span.End()

	mail, err := uc.buildMail(m)
	if err != nil {
		return err
	}
	if err := uc.mailer.Send(ctx, mail); err != nil {
		span.RecordError(err)
		return fmt.Errorf("send contact notification: %w", err)
	}
	uc.logger.Info("Contact notification sent", zap.String("message_id", m.ID.String()))
	return nil
}

func (uc *NotifyOwnerUseCase) buildMail(m *contact.Message) (service.Mail, error) {
	data := notifyData{
		Name:     m.Name,
		Email:    m.Email,
		Message:  m.Message,
		Received: m.CreatedAt.UTC().Format("02 Jan 2006 15:04 MST"),
	}
	subject := "New contact message from " + m.Name
	if m.Subject != nil && *m.Subject != "" {
		data.Subject = *m.Subject
		subject = "[Contact] " + *m.Subject
	}

	var body bytes.Buffer
	if err := notifyTemplate.Execute(&body, data); err != nil {
		return service.Mail{}, fmt.Errorf("render contact notification: %w", err)
	}
	return service.Mail{
		To:       uc.ownerTo,
		ReplyTo:  m.Email,
		Subject:  subject,
		HTMLBody: body.String(),
	}, nil
}
