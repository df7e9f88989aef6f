package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrSetupCompleted     = errors.New("an administrator already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("username must be between 3 and 50 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrSelfDemotion       = errors.New("administrators cannot remove their own admin role")
)
