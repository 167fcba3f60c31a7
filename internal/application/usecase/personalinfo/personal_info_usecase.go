package personalinfo

import (
	"context"
	"time"

	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type PersonalInfoUseCase struct {
	repo   personalinfo.Repository
	logger logger.Logger
}

func NewPersonalInfoUseCase(repo personalinfo.Repository, log logger.Logger) *PersonalInfoUseCase {
	return &PersonalInfoUseCase{
		repo:   repo,
		logger: log,
	}
}

type GetPersonalInfoOutput struct {
	Info *personalinfo.PersonalInfo
}

func (uc *PersonalInfoUseCase) ExecuteGet(ctx context.Context) (*GetPersonalInfoOutput, error) {
	info, err := uc.repo.FindSingle(ctx)
	if err != nil {
		return nil, err
	}
	return &GetPersonalInfoOutput{Info: info}, nil
}

type UpdatePersonalInfoInput struct {
	Patch personalinfo.Patch
}

type UpdatePersonalInfoOutput struct {
	Info *personalinfo.PersonalInfo
}

// ExecuteUpdate never inserts; the row is created by the seed script.
func (uc *PersonalInfoUseCase) ExecuteUpdate(ctx context.Context, input UpdatePersonalInfoInput) (*UpdatePersonalInfoOutput, error) {
	info, err := uc.repo.FindSingle(ctx)
	if err != nil {
		return nil, err
	}

	info.Apply(input.Patch)
	info.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, info); err != nil {
		uc.logger.Error("Failed to update personal info", err)
		return nil, err
	}
	return &UpdatePersonalInfoOutput{Info: info}, nil
}
