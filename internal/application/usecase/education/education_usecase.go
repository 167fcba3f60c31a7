package education

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("education_usecase")

type EducationUseCase struct {
	repo   education.Repository
	logger logger.Logger
}

func NewEducationUseCase(r education.Repository, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, logger: log}
}

type CreateEducationInput struct {
	Institution  string
	Degree       string
	FieldOfStudy *string
	StartDate    time.Time
	EndDate      *time.Time
	IsCurrent    bool
	Grade        *string
	Activities   *string
	Description  *string
}

func (uc *EducationUseCase) CreateEducation(ctx context.Context, in CreateEducationInput) (*education.Education, error) {
	ctx, span := tracer.Start(ctx, "CreateEducation")
	defer span.End()

	now := time.Now().UTC()
	e := &education.Education{
		ID:          uuid.New(),
		Institution: in.Institution,
		Degree:      in.Degree,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsCurrent:   in.IsCurrent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.Apply(education.Patch{
		FieldOfStudy: in.FieldOfStudy,
		Grade:        in.Grade,
		Activities:   in.Activities,
		Description:  in.Description,
	})

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save education", err, zap.String("institution", e.Institution))
		return nil, err
	}
	return e, nil
}

func (uc *EducationUseCase) UpdateEducation(ctx context.Context, id uuid.UUID, patch education.Patch) (*education.Education, error) {
	ctx, span := tracer.Start(ctx, "UpdateEducation")
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

func (uc *EducationUseCase) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *EducationUseCase) GetEducation(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) ListEducation(ctx context.Context) ([]*education.Education, error) {
	return uc.repo.List(ctx)
}
