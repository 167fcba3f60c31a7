package auth

import (
	"context"
	"errors"

	"github.com/mahathirrr/portfolio/internal/application/session"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type LogoutUseCase struct {
	sessions *session.Manager
	logger   logger.Logger
}

func NewLogoutUseCase(sessions *session.Manager, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: log}
}

// Execute revokes the session. An already expired session still logs out successfully.
func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	err := uc.sessions.End(ctx, sessionID)
	if err == nil || errors.Is(err, session.ErrNotFound) {
		return nil
	}
	uc.logger.Error("Failed to end session", err)
	return apperror.NewInternal("failed to sign out", err)
}

type GetSessionUseCase struct {
	sessions *session.Manager
}

func NewGetSessionUseCase(sessions *session.Manager) *GetSessionUseCase {
	return &GetSessionUseCase{sessions: sessions}
}

type GetSessionOutput struct {
	State   session.State
	Session *session.Session
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, sessionID string) (*GetSessionOutput, error) {
	state, s := uc.sessions.Resolve(ctx, sessionID)
	if state != session.StateAuthenticated {
		return nil, apperror.NewUnauthorized("session expired or revoked", nil)
	}
	return &GetSessionOutput{State: state, Session: s}, nil
}
