package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type SetupStatus struct {
	NeedsSetup bool `json:"needs_setup"`
}

type SetupStatusUseCase struct {
	userRepo user.Repository
}

func NewSetupStatusUseCase(userRepo user.Repository) *SetupStatusUseCase {
	return &SetupStatusUseCase{userRepo: userRepo}
}

func (uc *SetupStatusUseCase) Execute(ctx context.Context) (*SetupStatus, error) {
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return &SetupStatus{NeedsSetup: n == 0}, nil
}

type SetupAdminCommand struct {
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required"`
}

// SetupAdminUseCase creates the first account, always as admin. It is refused
// once any user exists.
type SetupAdminUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewSetupAdminUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *SetupAdminUseCase {
	return &SetupAdminUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *SetupAdminUseCase) Execute(ctx context.Context, cmd SetupAdminCommand) (*dto.UserResponse, error) {
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		uc.logger.Warnw("setup attempted after completion", "username", cmd.Username)
		return nil, translate(user.ErrSetupCompleted)
	}

	u, err := createUser(ctx, uc.userRepo, uc.hasher, cmd.Username, cmd.Password, authorization.RoleAdmin)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("initial administrator created", "user_id", u.ID(), "username", u.Username())
	resp := dto.ToUserResponse(u)
	return &resp, nil
}

// createUser validates, hashes and persists a new account.
func createUser(ctx context.Context, repo user.Repository, hasher PasswordHasher, username, password string, role authorization.UserRole) (*user.User, error) {
	if err := user.ValidatePassword(password); err != nil {
		return nil, translate(err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(username, hash, role)
	if err != nil {
		return nil, translate(err)
	}

	if err := repo.Create(ctx, u); err != nil {
		if translated := translate(err); isAppError(translated) {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}
