package mail

import (
	"context"
	"fmt"
	"time"

	simplemail "github.com/xhit/go-simple-mail/v2"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type smtpMailer struct {
	cfg    config.Config
	logger logger.Logger
}

func NewSMTPMailer(cfg config.Config, log logger.Logger) service.Mailer {
	return &smtpMailer{cfg: cfg, logger: log}
}

func (m *smtpMailer) Send(ctx context.Context, msg service.Mail) error {
	mc := m.cfg.Mail
	if !mc.Enabled {
		m.logger.Debug("Mail is disabled, skipping", zap.String("subject", msg.Subject))
		return nil
	}
	if msg.To == "" {
		m.logger.Warn("Mail recipient is empty, skipping", zap.String("subject", msg.Subject))
		return nil
	}

	server := simplemail.NewSMTPClient()
	server.Host = mc.SMTPHost
	server.Port = mc.SMTPPort
	server.Username = mc.Username
	server.Password = mc.Password
	if mc.UseTLS {
		server.Encryption = simplemail.EncryptionSTARTTLS
	} else {
		server.Encryption = simplemail.EncryptionNone
	}
	server.KeepAlive = false
	server.ConnectTimeout = 10 * time.Second
	server.SendTimeout = 10 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d > 0 && d < server.SendTimeout {
			server.SendTimeout = d
		}
	}

	client, err := server.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			m.logger.Warn("Failed to close SMTP client", zap.Error(closeErr))
		}
	}()

	fromName := mc.FromName
	if fromName == "" {
		fromName = m.cfg.App.OwnerName
	}
	email := simplemail.NewMSG()
	email.SetFrom(fmt.Sprintf("%s <%s>", fromName, mc.FromEmail))
	email.AddTo(msg.To)
	if msg.ReplyTo != "" {
		email.SetReplyTo(msg.ReplyTo)
	}
	email.SetSubject(msg.Subject)
	email.SetBody(simplemail.TextHTML, msg.HTMLBody)
	if email.Error != nil {
		return fmt.Errorf("failed to build email: %w", email.Error)
	}

	if err := email.Send(client); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.logger.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
