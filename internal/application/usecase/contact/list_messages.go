package contact

import (
	"context"

	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListMessagesUseCase struct {
	repo   contact.Repository
	logger logger.Logger
}

func NewListMessagesUseCase(r contact.Repository, log logger.Logger) *ListMessagesUseCase {
	return &ListMessagesUseCase{repo: r, logger: log}
}

type ListMessagesInput struct {
	Page  int
	Limit int
}

type ListMessagesOutput struct {
	Messages []*contact.Message
	Page     int
	Limit    int
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, input ListMessagesInput) (*ListMessagesOutput, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}
	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}

	offset := (input.Page - 1) * input.Limit
	messages, err := uc.repo.List(ctx, input.Limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list contact messages", err)
		return nil, err
	}
	return &ListMessagesOutput{Messages: messages, Page: input.Page, Limit: input.Limit}, nil
}
