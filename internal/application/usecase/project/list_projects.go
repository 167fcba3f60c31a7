package project

import (
	"context"

	"github.com/mahathirrr/portfolio/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsInput struct {
	Category string
}

type ListProjectsOutput struct {
	Projects   []*project.Project
	Categories []string
}

// Execute always reads the whole table; category only filters the result.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	all, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{
		Projects:   project.FilterByCategory(all, input.Category),
		Categories: project.DistinctCategories(all),
	}, nil
}
