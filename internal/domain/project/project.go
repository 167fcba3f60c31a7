package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultStatus   = "Completed"
	NoCategory      = "No Category"
	AllCategories   = "All"
	ResourceProject = "project"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	GithubURL    *string   `json:"github_url"`
	DemoURL      *string   `json:"demo_url"`
	Category     string    `json:"category"`
	Categories   []string  `json:"categories"`
	Status       string    `json:"status"`
	Award        *string   `json:"award"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
)

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

func (p *Project) ApplyDefaults() {
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	p.syncCategories()
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
}

// PrimaryCategory is the first category, falling back to the legacy field.
func (p *Project) PrimaryCategory() string {
	if len(p.Categories) > 0 {
		return p.Categories[0]
	}
	if p.Category != "" {
		return p.Category
	}
	return NoCategory
}

// CategoryList is the categories a project belongs to, falling back to the
// legacy single category for rows written before the list existed.
func (p *Project) CategoryList() []string {
	if len(p.Categories) > 0 {
		return p.Categories
	}
	if p.Category != "" {
		return []string{p.Category}
	}
	return nil
}

func (p *Project) HasCategory(category string) bool {
	return lo.Contains(p.CategoryList(), category)
}

// syncCategories makes the list canonical: a lone legacy category seeds the
// list, and the legacy field mirrors the first list entry.
func (p *Project) syncCategories() {
	if len(p.Categories) == 0 && p.Category != "" {
		p.Categories = []string{p.Category}
	}
	p.Category = ""
	if len(p.Categories) > 0 {
		p.Category = p.Categories[0]
	}
}

// FilterByCategory keeps fetch order. An empty category or "All" returns the
// input unchanged.
func FilterByCategory(projects []*Project, category string) []*Project {
	if category == "" || category == AllCategories {
		return projects
	}
	return lo.Filter(projects, func(p *Project, _ int) bool {
		return p.HasCategory(category)
	})
}

// DistinctCategories returns categories in first-seen order.
func DistinctCategories(projects []*Project) []string {
	all := lo.FlatMap(projects, func(p *Project, _ int) []string {
		return p.CategoryList()
	})
	return lo.Uniq(all)
}

type Patch struct {
	Title        *string
	Description  *string
	ImageURL     *string
	GithubURL    *string
	DemoURL      *string
	Category     *string
	Categories   *[]string
	Status       *string
	Award        *string
	Technologies *[]string
}

// Apply shallow-merges the provided fields. An empty string clears an
// optional URL or award. Categories wins over the legacy Category when both
// are set.
func (p *Project) Apply(patch Patch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = optional(*patch.ImageURL)
	}
	if patch.GithubURL != nil {
		p.GithubURL = optional(*patch.GithubURL)
	}
	if patch.DemoURL != nil {
		p.DemoURL = optional(*patch.DemoURL)
	}
	switch {
	case patch.Categories != nil:
		p.Categories = *patch.Categories
		p.Category = ""
	case patch.Category != nil:
		p.Categories = nil
		p.Category = *patch.Category
	}
	if patch.Categories != nil || patch.Category != nil {
		p.syncCategories()
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Award != nil {
		p.Award = optional(*patch.Award)
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
}
