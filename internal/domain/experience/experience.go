package experience

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahathirrr/portfolio/internal/domain/timeline"
)

const DefaultEmploymentType = "Full-time"

// Values offered by the admin form; the field stays a free string.
var EmploymentTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Freelance"}

type Experience struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       *string    `json:"location"`
	EmploymentType string     `json:"employment_type"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	IsCurrent      bool       `json:"is_current"`
	Description    *string    `json:"description"`
	Skills         []string   `json:"skills"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

var ErrStartDateRequired = errors.New("start_date is required")

func (e *Experience) Validate() error {
	if e.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	return nil
}

// Normalize applies defaults and clears end_date when is_current.
func (e *Experience) Normalize() {
	if e.EmploymentType == "" {
		e.EmploymentType = DefaultEmploymentType
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	if e.IsCurrent {
		e.EndDate = nil
	}
}

func (e *Experience) Period() string {
	return timeline.Period(e.StartDate, e.EndDate, e.IsCurrent)
}

type Patch struct {
	Title          *string
	Company        *string
	Location       *string
	EmploymentType *string
	StartDate      *time.Time
	EndDate        *time.Time
	ClearEndDate   bool
	IsCurrent      *bool
	Description    *string
	Skills         *[]string
}

func (e *Experience) Apply(p Patch) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.Location != nil {
		e.Location = optional(*p.Location)
	}
	if p.EmploymentType != nil {
		e.EmploymentType = *p.EmploymentType
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.ClearEndDate {
		e.EndDate = nil
	} else if p.EndDate != nil {
		end := *p.EndDate
		e.EndDate = &end
	}
	if p.IsCurrent != nil {
		e.IsCurrent = *p.IsCurrent
	}
	if p.Description != nil {
		e.Description = optional(*p.Description)
	}
	if p.Skills != nil {
		e.Skills = *p.Skills
	}
	e.Normalize()
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

type Repository interface {
	Save(ctx context.Context, experience *Experience) error
	Update(ctx context.Context, experience *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	List(ctx context.Context) ([]*Experience, error)
}
