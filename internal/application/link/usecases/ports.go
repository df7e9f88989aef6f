package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
)

// QuotaGuard rejects creations beyond the plan ceiling.
type QuotaGuard interface {
	Require(ctx context.Context, userID uint, kind plan.ResourceKind) error
}

// CodeGenerator returns a fresh random short code.
type CodeGenerator func() (string, error)

func loadAccessibleLink(ctx context.Context, repo link.Repository, linkID uint, actor authorization.Actor) (*link.Link, error) {
	l, err := repo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, link.ErrLinkNotFound) {
			return nil, apperrors.NewNotFoundError("link not found")
		}
		return nil, fmt.Errorf("failed to load link: %w", err)
	}
	if !actor.CanAccess(l.UserID()) {
		return nil, apperrors.NewNotFoundError("link not found")
	}
	return l, nil
}
