package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("project_usecase")

type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	ImageURL     *string
	GithubURL    *string
	DemoURL      *string
	Category     string
	Categories   []string
	Status       string
	Award        *string
	Technologies []string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "CreateProject")
	defer span.End()

	now := time.Now().UTC()
	newProject := &project.Project{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Categories:   input.Categories,
		Status:       input.Status,
		Technologies: input.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	newProject.Apply(project.Patch{
		ImageURL:  input.ImageURL,
		GithubURL: input.GithubURL,
		DemoURL:   input.DemoURL,
		Award:     input.Award,
	})
	newProject.ApplyDefaults()

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save project", err, zap.String("title", newProject.Title))
		return nil, err
	}

	span.SetAttributes(attribute.String("project_id", newProject.ID.String()))
	return &CreateProjectOutput{Project: newProject}, nil
}
