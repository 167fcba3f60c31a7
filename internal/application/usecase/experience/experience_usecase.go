package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/mahathirrr/portfolio/internal/domain/experience"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("experience_usecase")

type ExperienceUseCase struct {
	repo   experience.Repository
	logger logger.Logger
}

func NewExperienceUseCase(r experience.Repository, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, logger: log}
}

type CreateExperienceInput struct {
	Title          string
	Company        string
	Location       *string
	EmploymentType string
	StartDate      time.Time
	EndDate        *time.Time
	IsCurrent      bool
	Description    *string
	Skills         []string
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, in CreateExperienceInput) (*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "CreateExperience")
	defer span.End()

	now := time.Now().UTC()
	e := &experience.Experience{
		ID:             uuid.New(),
		Title:          in.Title,
		Company:        in.Company,
		EmploymentType: in.EmploymentType,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		IsCurrent:      in.IsCurrent,
		Skills:         in.Skills,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	e.Apply(experience.Patch{Location: in.Location, Description: in.Description})

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save experience", err)
		return nil, err
	}
	return e, nil
}

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, id uuid.UUID, patch experience.Patch) (*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "UpdateExperience")
	defer span.End()

	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Apply(patch)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	e.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, e); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return e, nil
}

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ExperienceUseCase) GetExperience(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ExperienceUseCase) ListExperiences(ctx context.Context) ([]*experience.Experience, error) {
	return uc.repo.List(ctx)
}
