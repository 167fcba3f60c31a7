package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultIcon = "Code"

// Service is shown on the home and services pages.
// Icon is a symbolic name mapped to an image by the frontend.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Service) ApplyDefaults() {
	if s.Icon == "" {
		s.Icon = DefaultIcon
	}
	if s.Features == nil {
		s.Features = []string{}
	}
}

type Patch struct {
	Title       *string
	Description *string
	Icon        *string
	Category    *string
	ImageURL    *string
	Features    *[]string
}

func (s *Service) Apply(p Patch) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.ImageURL != nil {
		if strings.TrimSpace(*p.ImageURL) == "" {
			s.ImageURL = nil
		} else {
			url := *p.ImageURL
			s.ImageURL = &url
		}
	}
	if p.Features != nil {
		s.Features = *p.Features
	}
}

type Repository interface {
	Save(ctx context.Context, service *Service) error
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
}
