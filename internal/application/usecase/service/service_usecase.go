package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/service"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("service_usecase")

type ServiceUseCase struct {
	repo   service.Repository
	logger logger.Logger
}

func NewServiceUseCase(r service.Repository, log logger.Logger) *ServiceUseCase {
	return &ServiceUseCase{repo: r, logger: log}
}

type CreateServiceInput struct {
	Title       string
	Description string
	Icon        string
	Category    string
	ImageURL    *string
	Features    []string
}

func (uc *ServiceUseCase) CreateService(ctx context.Context, in CreateServiceInput) (*service.Service, error) {
	ctx, span := tracer.Start(ctx, "CreateService")
	defer span.End()

	now := time.Now().UTC()
	s := &service.Service{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Category:    in.Category,
		Features:    in.Features,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.Apply(service.Patch{ImageURL: in.ImageURL})
	s.ApplyDefaults()

	if err := uc.repo.Save(ctx, s); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save service", err, zap.String("title", s.Title))
		return nil, err
	}
	return s, nil
}

func (uc *ServiceUseCase) UpdateService(ctx context.Context, id uuid.UUID, patch service.Patch) (*service.Service, error) {
	ctx, span := tracer.Start(ctx, "UpdateService")
	defer span.End()

	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Apply(patch)
	s.ApplyDefaults()
	s.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, s); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return s, nil
}

func (uc *ServiceUseCase) DeleteService(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ServiceUseCase) GetService(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ServiceUseCase) ListServices(ctx context.Context) ([]*service.Service, error) {
	return uc.repo.List(ctx)
}
