package usecases

import (
	"errors"

	"github.com/orris-inc/toolbox/internal/domain/user"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
)

// translate maps user domain errors onto AppErrors; anything else is returned
// unchanged for the caller to wrap.
func translate(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return apperrors.NewNotFoundError("user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		return apperrors.NewConflictError("username already exists")
	case errors.Is(err, user.ErrSetupCompleted):
		return apperrors.NewConflictError("setup already completed")
	case errors.Is(err, user.ErrInvalidUsername),
		errors.Is(err, user.ErrPasswordTooShort):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, user.ErrSelfDemotion):
		return apperrors.NewForbiddenError(err.Error())
	}
	return err
}

func isAppError(err error) bool {
	return apperrors.IsAppError(err)
}
