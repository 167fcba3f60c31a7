package sitesetting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/sitesetting"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type SiteSettingUseCase struct {
	repo   sitesetting.Repository
	logger logger.Logger
}

func NewSiteSettingUseCase(r sitesetting.Repository, log logger.Logger) *SiteSettingUseCase {
	return &SiteSettingUseCase{repo: r, logger: log}
}

// GetSetting reads a missing key as true.
func (uc *SiteSettingUseCase) GetSetting(ctx context.Context, key string) (bool, error) {
	s, err := uc.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return s.Value, nil
}

func (uc *SiteSettingUseCase) ListSettings(ctx context.Context) ([]*sitesetting.Setting, error) {
	return uc.repo.List(ctx)
}

func (uc *SiteSettingUseCase) Settings(ctx context.Context) (sitesetting.Settings, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return sitesetting.FromList(list), nil
}

type UpsertSettingInput struct {
	Key         string
	Value       bool
	Description *string
}

func (uc *SiteSettingUseCase) UpsertSetting(ctx context.Context, in UpsertSettingInput) (*sitesetting.Setting, error) {
	now := time.Now().UTC()
	s := &sitesetting.Setting{
		ID:          uuid.New(),
		Key:         in.Key,
		Value:       in.Value,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		uc.logger.Error("Failed to upsert site setting", err, zap.String("key", in.Key))
		return nil, err
	}
	return s, nil
}
