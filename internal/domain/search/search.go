package search

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ResourceProject = "project"
	ResourceService = "service"
)

type SearchResult struct {
	ID           uuid.UUID `json:"id"`
	ResourceType string    `json:"resource_type"`
	Title        string    `json:"title"`
	Snippet      string    `json:"snippet"`
	Rank         float32   `json:"rank"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
