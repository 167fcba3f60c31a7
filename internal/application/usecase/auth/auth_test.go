package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/application/session"
	"github.com/mahathirrr/portfolio/internal/domain/profile"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type stubProfileRepo struct {
	profile *profile.Profile
	err     error
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*profile.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.profile == nil || r.profile.Email != email {
		return nil, apperror.NewNotFound("profile", email)
	}
	return r.profile, nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	return nil, apperror.NewNotFound("profile", id.String())
}

func (r *stubProfileRepo) Upsert(_ context.Context, _ *profile.Profile) error { return nil }

type harness struct {
	sessions *session.Manager
	jwt      *auth.JWTService
	login    *LoginUseCase
	logout   *LogoutUseCase
	current  *GetSessionUseCase
}

func newHarness(t *testing.T, repo *stubProfileRepo) *harness {
	t.Helper()
	log := logger.NewNop()
	sessions := session.NewManager(session.NewMemoryStore(time.Minute), time.Hour, log)
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return &harness{
		sessions: sessions,
		jwt:      jwtSvc,
		login:    NewLoginUseCase(repo, sessions, jwtSvc, log),
		logout:   NewLogoutUseCase(sessions, log),
		current:  NewGetSessionUseCase(sessions),
	}
}

func ownerRepo(t *testing.T) *stubProfileRepo {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	return &stubProfileRepo{profile: &profile.Profile{
		ID: uuid.New(), Email: "owner@example.com", Role: profile.RoleAdmin, PasswordHash: hash,
	}}
}

func TestLogin_Success(t *testing.T) {
	h := newHarness(t, ownerRepo(t))

	out, err := h.login.Execute(context.Background(), LoginInput{Email: " owner@example.com ", Password: "correct horse"})

	require.NoError(t, err)
	claims, err := h.jwt.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.Session.ID, claims.SessionID)

	current, err := h.current.Execute(context.Background(), out.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateAuthenticated, current.State)
}

func TestLogin_FailuresShareOneError(t *testing.T) {
	h := newHarness(t, ownerRepo(t))
	inputs := []LoginInput{
		{Email: "owner@example.com", Password: "wrong"},
		{Email: "stranger@example.com", Password: "correct horse"},
		{Email: "", Password: ""},
	}

	for _, in := range inputs {
		_, err := h.login.Execute(context.Background(), in)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.InvalidLoginMessage, appErr.Message)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	}
}

func TestLogin_RepositoryErrorIsNotMasked(t *testing.T) {
	h := newHarness(t, &stubProfileRepo{err: apperror.NewInternal("db down", errors.New("dial tcp"))})

	_, err := h.login.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "x"})

	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestLogout_RevokesAndIsIdempotent(t *testing.T) {
	h := newHarness(t, ownerRepo(t))
	out, err := h.login.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, h.logout.Execute(context.Background(), out.Session.ID))
	require.NoError(t, h.logout.Execute(context.Background(), out.Session.ID))

	_, err = h.current.Execute(context.Background(), out.Session.ID)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
