package personalinfo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is a single row created by the seed script and only updated by the admin.
type PersonalInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	GithubURL   *string   `json:"github_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Patch struct {
	Name        *string
	Title       *string
	Description *string
	Email       *string
	GithubURL   *string
	LinkedinURL *string
}

func (p *PersonalInfo) Apply(patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.GithubURL != nil {
		p.GithubURL = optional(*patch.GithubURL)
	}
	if patch.LinkedinURL != nil {
		p.LinkedinURL = optional(*patch.LinkedinURL)
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

type Repository interface {
	// FindSingle fails when the table holds zero rows or more than one.
	FindSingle(ctx context.Context) (*PersonalInfo, error)
	Update(ctx context.Context, info *PersonalInfo) error
	Save(ctx context.Context, info *PersonalInfo) error
}
