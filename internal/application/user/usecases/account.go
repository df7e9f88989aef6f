package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type GetAccountUseCase struct {
	userRepo user.Repository
	usage    UsageReporter
}

func NewGetAccountUseCase(userRepo user.Repository, usage UsageReporter) *GetAccountUseCase {
	return &GetAccountUseCase{userRepo: userRepo, usage: usage}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, userID uint) (*dto.AccountResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if translated := translate(err); isAppError(translated) {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	summary, err := uc.usage.Usage(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute usage: %w", err)
	}

	return &dto.AccountResponse{
		User:    dto.ToUserResponse(u),
		Usage:   summary,
		Emitter: u.EmitterSettings(),
	}, nil
}

type UpdateEmitterCommand struct {
	UserID   uint
	Settings user.EmitterSettings
}

// UpdateEmitterUseCase replaces the business identity printed on documents.
type UpdateEmitterUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateEmitterUseCase(userRepo user.Repository, logger logger.Interface) *UpdateEmitterUseCase {
	return &UpdateEmitterUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateEmitterUseCase) Execute(ctx context.Context, cmd UpdateEmitterCommand) (*user.EmitterSettings, error) {
	var saved *user.EmitterSettings
	_, err := updateUser(ctx, uc.userRepo, cmd.UserID, func(u *user.User) error {
		if err := u.UpdateEmitterSettings(cmd.Settings); err != nil {
			return err
		}
		saved = u.EmitterSettings()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("emitter settings updated", "user_id", cmd.UserID)
	return saved, nil
}
