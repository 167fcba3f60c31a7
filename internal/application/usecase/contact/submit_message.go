package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("contact_usecase")

type SubmitMessageUseCase struct {
	repo      contact.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

// publisher may be nil when Kafka is not configured; the message is still stored.
func NewSubmitMessageUseCase(r contact.Repository, p service.EventPublisher, log logger.Logger) *SubmitMessageUseCase {
	return &SubmitMessageUseCase{repo: r, publisher: p, logger: log}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

type SubmitMessageOutput struct {
	Message *contact.Message
}

func (uc *SubmitMessageUseCase) Execute(ctx context.Context, input SubmitMessageInput) (*SubmitMessageOutput, error) {
	ctx, span := tracer.Start(ctx, "SubmitMessage")
	defer span.End()

	m := &contact.Message{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now().UTC(),
	}
	if input.Subject != nil {
		if s := strings.TrimSpace(*input.Subject); s != "" {
			m.Subject = &s
		}
	}
	if err := m.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.repo.Save(ctx, m); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save contact message", err)
		return nil, err
	}

	if uc.publisher != nil {
		go func() {
			if err := uc.publisher.PublishContactMessage(context.Background(), m); err != nil {
				uc.logger.Error("Failed to publish Kafka 'contact.messages' event", err, zap.String("message_id", m.ID.String()))
			}
		}()
	}

	return &SubmitMessageOutput{Message: m}, nil
}
