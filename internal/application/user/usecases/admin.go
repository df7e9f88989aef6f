package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
	Username string
	Role     string
	Plan     string
}

type ListUsersResult struct {
	Users []dto.AdminUserResponse
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	usage    UsageReporter
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, usage UsageReporter, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		usage:    usage,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Username: query.Username,
		Role:     query.Role,
		Plan:     query.Plan,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := &ListUsersResult{
		Users: make([]dto.AdminUserResponse, 0, len(users)),
		Total: total,
	}
	for _, u := range users {
		summary, err := uc.usage.Usage(ctx, u.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to compute usage for user %d: %w", u.ID(), err)
		}
		result.Users = append(result.Users, dto.AdminUserResponse{
			UserResponse: dto.ToUserResponse(u),
			Usage:        summary.Kinds,
		})
	}
	return result, nil
}

type CreateUserCommand struct {
	Username string                 `validate:"required,min=3,max=50"`
	Password string                 `validate:"required"`
	Role     authorization.UserRole `validate:"omitempty,oneof=admin user"`
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error) {
	role := cmd.Role
	if role == "" {
		role = authorization.RoleUser
	}

	u, err := createUser(ctx, uc.userRepo, uc.hasher, cmd.Username, cmd.Password, role)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user created by admin", "user_id", u.ID(), "role", role)
	resp := dto.ToUserResponse(u)
	return &resp, nil
}

type DeleteUserCommand struct {
	UserID uint
	Actor  authorization.Actor
}

// DeleteUserUseCase removes an account with everything it owns.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == cmd.Actor.UserID {
		return apperrors.NewForbiddenError("administrators cannot delete their own account")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		if translated := translate(err); isAppError(translated) {
			return translated
		}
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "by", cmd.Actor.UserID)
	return nil
}

type ChangeRoleCommand struct {
	UserID uint
	Role   authorization.UserRole
	Actor  authorization.Actor
}

type ChangeRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserResponse, error) {
	if !cmd.Role.IsValid() {
		return nil, apperrors.NewValidationError("invalid role", string(cmd.Role))
	}
	if cmd.UserID == cmd.Actor.UserID && !cmd.Role.IsAdmin() {
		return nil, translate(user.ErrSelfDemotion)
	}

	return updateUser(ctx, uc.userRepo, cmd.UserID, func(u *user.User) error {
		return u.ChangeRole(cmd.Role)
	})
}

type ChangePlanCommand struct {
	UserID uint
	Plan   plan.Tier
}

// ChangePlanUseCase lets an administrator grant or revoke premium by hand.
type ChangePlanUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangePlanUseCase(userRepo user.Repository, logger logger.Interface) *ChangePlanUseCase {
	return &ChangePlanUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ChangePlanUseCase) Execute(ctx context.Context, cmd ChangePlanCommand) (*dto.UserResponse, error) {
	if !cmd.Plan.IsValid() {
		return nil, apperrors.NewValidationError("invalid plan", string(cmd.Plan))
	}

	resp, err := updateUser(ctx, uc.userRepo, cmd.UserID, func(u *user.User) error {
		return u.ChangePlan(cmd.Plan)
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("user plan changed", "user_id", cmd.UserID, "plan", cmd.Plan)
	return resp, nil
}

func updateUser(ctx context.Context, repo user.Repository, id uint, change func(*user.User) error) (*dto.UserResponse, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		if translated := translate(err); isAppError(translated) {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := change(u); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := dto.ToUserResponse(u)
	return &resp, nil
}
