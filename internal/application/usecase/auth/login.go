package auth

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/session"
	"github.com/mahathirrr/portfolio/internal/domain/profile"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

type LoginUseCase struct {
	profileRepo profile.Repository
	sessions    *session.Manager
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewLoginUseCase(repo profile.Repository, sessions *session.Manager, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		profileRepo: repo,
		sessions:    sessions,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	Session     *session.Session
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.NewInvalidLogin(nil)
	}

	p, err := uc.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewInvalidLogin(err)
		}
		uc.logger.Error("Failed to look up profile", err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, p.PasswordHash) {
		err := apperror.NewInvalidLogin(nil)
		span.RecordError(err)
		return nil, err
	}

	s, err := uc.sessions.Start(ctx, p)
	if err != nil {
		uc.logger.Error("Failed to start session", err, zap.String("profile_id", p.ID.String()))
		return nil, apperror.NewInternal("failed to start session", err)
	}

	token, err := uc.jwtSvc.GenerateToken(s.ID, p.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("profile_id", p.ID.String()))
		if endErr := uc.sessions.End(ctx, s.ID); endErr != nil {
			uc.logger.Warn("Failed to roll back session", zap.Error(endErr))
		}
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("profile_id", p.ID.String()))
	return &LoginOutput{AccessToken: token, Session: s}, nil
}
