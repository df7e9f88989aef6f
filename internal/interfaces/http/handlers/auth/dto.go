package auth

import (
	"github.com/orris-inc/toolbox/internal/application/user/dto"
)

type SetupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse echoes the token for API clients that cannot keep cookies.
type LoginResponse struct {
	User      dto.UserResponse `json:"user"`
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
}
