package usecases

import (
	"context"

	"github.com/orris-inc/toolbox/internal/application/quota"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (string, error)
}

// UsageReporter summarizes per-kind usage for a user.
type UsageReporter interface {
	Usage(ctx context.Context, userID uint) (*quota.UsageSummary, error)
}
