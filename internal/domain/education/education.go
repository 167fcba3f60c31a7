package education

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahathirrr/portfolio/internal/domain/timeline"
)

type Education struct {
	ID           uuid.UUID  `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy *string    `json:"field_of_study"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Grade        *string    `json:"grade"`
	Activities   *string    `json:"activities"`
	Description  *string    `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var ErrStartDateRequired = errors.New("start_date is required")

func (e *Education) Validate() error {
	if e.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	return nil
}

func (e *Education) Normalize() {
	if e.IsCurrent {
		e.EndDate = nil
	}
}

func (e *Education) Period() string {
	return timeline.Period(e.StartDate, e.EndDate, e.IsCurrent)
}

type Patch struct {
	Institution  *string
	Degree       *string
	FieldOfStudy *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	IsCurrent    *bool
	Grade        *string
	Activities   *string
	Description  *string
}

func (e *Education) Apply(p Patch) {
	if p.Institution != nil {
		e.Institution = *p.Institution
	}
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.FieldOfStudy != nil {
		e.FieldOfStudy = optional(*p.FieldOfStudy)
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
	if p.Grade != nil {
		e.Grade = optional(*p.Grade)
	}
	if p.Activities != nil {
		e.Activities = optional(*p.Activities)
	}
	if p.Description != nil {
		e.Description = optional(*p.Description)
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
	Save(ctx context.Context, education *Education) error
	Update(ctx context.Context, education *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	List(ctx context.Context) ([]*Education, error)
}
