package http

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/internal/domain/experience"
	"github.com/mahathirrr/portfolio/internal/domain/listfield"
	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/internal/domain/service"
)

// Date accepts "2006-01-02", RFC3339, "" or null. Set reports that the field was in the body,
// and a nil Time means the client cleared the value.
type Date struct {
	Set  bool
	Time *time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.Set = true
	d.Time = nil
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			d.Time = &t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

func (d Date) Value() time.Time {
	if d.Time == nil {
		return time.Time{}
	}
	return *d.Time
}

// Auth DTOs

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Service DTOs

type CreateServiceRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Category    string          `json:"category"`
	ImageURL    *string         `json:"image_url"`
	Features    listfield.Lines `json:"features"`
}

type UpdateServiceRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Icon        *string          `json:"icon"`
	Category    *string          `json:"category"`
	ImageURL    *string          `json:"image_url"`
	Features    *listfield.Lines `json:"features"`
}

func (r UpdateServiceRequest) ToPatch() service.Patch {
	return service.Patch{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Features:    linesPtr(r.Features),
	}
}

// Project DTOs

type CreateProjectRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ImageURL     *string         `json:"image_url"`
	GithubURL    *string         `json:"github_url"`
	DemoURL      *string         `json:"demo_url"`
	Category     string          `json:"category"`
	Categories   listfield.Lines `json:"categories"`
	Status       string          `json:"status"`
	Award        *string         `json:"award"`
	Technologies listfield.Lines `json:"technologies"`
}

type UpdateProjectRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	ImageURL     *string          `json:"image_url"`
	GithubURL    *string          `json:"github_url"`
	DemoURL      *string          `json:"demo_url"`
	Category     *string          `json:"category"`
	Categories   *listfield.Lines `json:"categories"`
	Status       *string          `json:"status"`
	Award        *string          `json:"award"`
	Technologies *listfield.Lines `json:"technologies"`
}

func (r UpdateProjectRequest) ToPatch() project.Patch {
	return project.Patch{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		GithubURL:    r.GithubURL,
		DemoURL:      r.DemoURL,
		Category:     r.Category,
		Categories:   linesPtr(r.Categories),
		Status:       r.Status,
		Award:        r.Award,
		Technologies: linesPtr(r.Technologies),
	}
}

// Experience DTOs

type CreateExperienceRequest struct {
	Title          string           `json:"title"`
	Company        string           `json:"company"`
	Location       *string          `json:"location"`
	EmploymentType string           `json:"employment_type"`
	StartDate      Date             `json:"start_date"`
	EndDate        Date             `json:"end_date"`
	IsCurrent      bool             `json:"is_current"`
	Description    *string          `json:"description"`
	Skills         listfield.Commas `json:"skills"`
}

type UpdateExperienceRequest struct {
	Title          *string           `json:"title"`
	Company        *string           `json:"company"`
	Location       *string           `json:"location"`
	EmploymentType *string           `json:"employment_type"`
	StartDate      Date              `json:"start_date"`
	EndDate        Date              `json:"end_date"`
	IsCurrent      *bool             `json:"is_current"`
	Description    *string           `json:"description"`
	Skills         *listfield.Commas `json:"skills"`
}

func (r UpdateExperienceRequest) ToPatch() experience.Patch {
	p := experience.Patch{
		Title:          r.Title,
		Company:        r.Company,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		IsCurrent:      r.IsCurrent,
		Description:    r.Description,
	}
	p.StartDate = startDatePatch(r.StartDate)
	p.EndDate, p.ClearEndDate = endDatePatch(r.EndDate)
	if r.Skills != nil {
		skills := []string(*r.Skills)
		p.Skills = &skills
	}
	return p
}

// Education DTOs

type CreateEducationRequest struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    Date    `json:"start_date"`
	EndDate      Date    `json:"end_date"`
	IsCurrent    bool    `json:"is_current"`
	Grade        *string `json:"grade"`
	Activities   *string `json:"activities"`
	Description  *string `json:"description"`
}

type UpdateEducationRequest struct {
	Institution  *string `json:"institution"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    Date    `json:"start_date"`
	EndDate      Date    `json:"end_date"`
	IsCurrent    *bool   `json:"is_current"`
	Grade        *string `json:"grade"`
	Activities   *string `json:"activities"`
	Description  *string `json:"description"`
}

func (r UpdateEducationRequest) ToPatch() education.Patch {
	p := education.Patch{
		Institution:  r.Institution,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		IsCurrent:    r.IsCurrent,
		Grade:        r.Grade,
		Activities:   r.Activities,
		Description:  r.Description,
	}
	p.StartDate = startDatePatch(r.StartDate)
	p.EndDate, p.ClearEndDate = endDatePatch(r.EndDate)
	return p
}

// Personal info DTOs

type UpdatePersonalInfoRequest struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

func (r UpdatePersonalInfoRequest) ToPatch() personalinfo.Patch {
	return personalinfo.Patch{
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		Email:       r.Email,
		GithubURL:   r.GithubURL,
		LinkedinURL: r.LinkedinURL,
	}
}

// Site setting DTOs

type UpsertSettingRequest struct {
	Value       *bool   `json:"setting_value"`
	Description *string `json:"description"`
}

type SettingValueDTO struct {
	Key   string `json:"setting_key"`
	Value bool   `json:"setting_value"`
}

// Contact DTOs

type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func linesPtr(l *listfield.Lines) *[]string {
	if l == nil {
		return nil
	}
	items := []string(*l)
	return &items
}

// startDatePatch passes an empty start_date through so Validate rejects it.
func startDatePatch(d Date) *time.Time {
	if !d.Set {
		return nil
	}
	t := d.Value()
	return &t
}

func endDatePatch(d Date) (end *time.Time, clear bool) {
	if !d.Set {
		return nil, false
	}
	if d.Time == nil {
		return nil, true
	}
	return d.Time, false
}
