package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// Profile is an admin account. Role is informational and never enforced.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	// Upsert by email, used by the seed script.
	Upsert(ctx context.Context, p *Profile) error
}
