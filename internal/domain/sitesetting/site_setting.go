package sitesetting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Keys read by the public pages to show or hide sections.
const (
	KeyShowExperienceMenu    = "show_experience_menu"
	KeyShowExperienceSection = "show_experience_section"
	KeyShowEducationSection  = "show_education_section"
)

var KnownKeys = []string{KeyShowExperienceMenu, KeyShowExperienceSection, KeyShowEducationSection}

type Setting struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"setting_key"`
	Value       bool      `json:"setting_value"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrKeyRequired = errors.New("setting_key is required")

func (s *Setting) Validate() error {
	if strings.TrimSpace(s.Key) == "" {
		return ErrKeyRequired
	}
	return nil
}

// Settings is a key lookup where a missing key reads as true.
type Settings map[string]bool

func FromList(list []*Setting) Settings {
	out := make(Settings, len(list))
	for _, s := range list {
		out[s.Key] = s.Value
	}
	return out
}

func (s Settings) Get(key string) bool {
	v, ok := s[key]
	if !ok {
		return true
	}
	return v
}

// Resolved fills every known key so clients never have to apply the default.
func (s Settings) Resolved() map[string]bool {
	out := make(map[string]bool, len(KnownKeys)+len(s))
	for _, k := range KnownKeys {
		out[k] = s.Get(k)
	}
	for k, v := range s {
		out[k] = v
	}
	return out
}

type Repository interface {
	List(ctx context.Context) ([]*Setting, error)
	FindByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, setting *Setting) error
}
