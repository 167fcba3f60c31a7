package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, logger: log}
}

type UpdateProjectInput struct {
	ProjectID uuid.UUID
	Patch     project.Patch
}

type UpdateProjectOutput struct {
	Project *project.Project
}

// Execute merges the patch into the stored row and returns the saved row.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateProject")
	defer span.End()

	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Apply(input.Patch)
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &UpdateProjectOutput{Project: p}, nil
}
