// Package testutil holds in-memory repositories shared by the use case tests.
package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/internal/domain/experience"
	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/internal/domain/search"
	"github.com/mahathirrr/portfolio/internal/domain/service"
	"github.com/mahathirrr/portfolio/internal/domain/sitesetting"
	"github.com/mahathirrr/portfolio/pkg/apperror"
)

// Store is an ordered in-memory table. Err, when set, is returned by every call.
type Store[T any] struct {
	mu       sync.RWMutex
	rows     []*T
	idOf     func(*T) uuid.UUID
	resource string
	calls    atomic.Int32

	Err error
}

func newStore[T any](resource string, idOf func(*T) uuid.UUID, rows ...*T) *Store[T] {
	return &Store[T]{rows: append([]*T(nil), rows...), idOf: idOf, resource: resource}
}

// Calls counts List invocations.
func (s *Store[T]) Calls() int { return int(s.calls.Load()) }

func (s *Store[T]) Rows() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]*T, 0, len(s.rows)), s.rows...)
}

func (s *Store[T]) Save(_ context.Context, row *T) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return nil
}

func (s *Store[T]) Update(_ context.Context, row *T) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if s.idOf(r) == s.idOf(row) {
			s.rows[i] = row
			return nil
		}
	}
	return apperror.NewNotFound(s.resource, s.idOf(row).String())
}

func (s *Store[T]) Delete(_ context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if s.idOf(r) == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound(s.resource, id.String())
}

func (s *Store[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rows {
		if s.idOf(r) == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound(s.resource, id.String())
}

func (s *Store[T]) List(_ context.Context) ([]*T, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Rows(), nil
}

func NewProjectRepo(rows ...*project.Project) *Store[project.Project] {
	return newStore("project", func(p *project.Project) uuid.UUID { return p.ID }, rows...)
}

func NewServiceRepo(rows ...*service.Service) *Store[service.Service] {
	return newStore("service", func(s *service.Service) uuid.UUID { return s.ID }, rows...)
}

func NewExperienceRepo(rows ...*experience.Experience) *Store[experience.Experience] {
	return newStore("experience", func(e *experience.Experience) uuid.UUID { return e.ID }, rows...)
}

func NewEducationRepo(rows ...*education.Education) *Store[education.Education] {
	return newStore("education", func(e *education.Education) uuid.UUID { return e.ID }, rows...)
}

var (
	_ project.Repository    = (*Store[project.Project])(nil)
	_ service.Repository    = (*Store[service.Service])(nil)
	_ experience.Repository = (*Store[experience.Experience])(nil)
	_ education.Repository  = (*Store[education.Education])(nil)
)

type PersonalInfoRepo struct {
	mu   sync.Mutex
	Rows []*personalinfo.PersonalInfo
	Err  error
}

func (r *PersonalInfoRepo) FindSingle(_ context.Context) (*personalinfo.PersonalInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if len(r.Rows) != 1 {
		return nil, apperror.NewInternal("expected exactly one personal_info row", nil)
	}
	cp := *r.Rows[0]
	return &cp, nil
}

func (r *PersonalInfoRepo) Save(_ context.Context, p *personalinfo.PersonalInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Rows = append(r.Rows, p)
	return nil
}

func (r *PersonalInfoRepo) Update(_ context.Context, p *personalinfo.PersonalInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, row := range r.Rows {
		if row.ID == p.ID {
			r.Rows[i] = p
			return nil
		}
	}
	return apperror.NewNotFound("personal info", p.ID.String())
}

type SettingRepo struct {
	mu   sync.Mutex
	Rows []*sitesetting.Setting
	Err  error
}

func (r *SettingRepo) List(_ context.Context) ([]*sitesetting.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append(make([]*sitesetting.Setting, 0, len(r.Rows)), r.Rows...), nil
}

func (r *SettingRepo) FindByKey(_ context.Context, key string) (*sitesetting.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, s := range r.Rows {
		if s.Key == key {
			return s, nil
		}
	}
	return nil, apperror.NewNotFound("site setting", key)
}

func (r *SettingRepo) Upsert(_ context.Context, s *sitesetting.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, row := range r.Rows {
		if row.Key == s.Key {
			s.ID, s.CreatedAt = row.ID, row.CreatedAt
			r.Rows[i] = s
			return nil
		}
	}
	r.Rows = append(r.Rows, s)
	return nil
}

type ContactRepo struct {
	mu   sync.Mutex
	Rows []*contact.Message
	Err  error
}

func (r *ContactRepo) Save(_ context.Context, m *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Rows = append(r.Rows, m)
	return nil
}

func (r *ContactRepo) List(_ context.Context, limit, offset int) ([]*contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if offset >= len(r.Rows) {
		return []*contact.Message{}, nil
	}
	end := min(offset+limit, len(r.Rows))
	return append([]*contact.Message(nil), r.Rows[offset:end]...), nil
}

// SearchRepo records the last query it was asked to run.
type SearchRepo struct {
	Results   []search.SearchResult
	Err       error
	LastQuery string
	LastLimit int
	Calls     int
}

func (r *SearchRepo) Search(_ context.Context, query string, limit int) ([]search.SearchResult, error) {
	r.Calls++
	r.LastQuery, r.LastLimit = query, limit
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Results, nil
}

var (
	_ personalinfo.Repository = (*PersonalInfoRepo)(nil)
	_ sitesetting.Repository  = (*SettingRepo)(nil)
	_ contact.Repository      = (*ContactRepo)(nil)
	_ search.Repository       = (*SearchRepo)(nil)
)
