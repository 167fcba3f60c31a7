package service

import (
	"context"

	"github.com/mahathirrr/portfolio/internal/domain/contact"
)

type EventPublisher interface {
	PublishContactMessage(ctx context.Context, m *contact.Message) error
}
