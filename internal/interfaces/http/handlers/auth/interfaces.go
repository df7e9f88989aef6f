package auth

import (
	"context"

	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/application/user/usecases"
)

type setupStatusUseCase interface {
	Execute(ctx context.Context) (*usecases.SetupStatus, error)
}

type setupAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetupAdminCommand) (*dto.UserResponse, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}
