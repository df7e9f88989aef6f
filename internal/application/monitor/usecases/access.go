package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
)

// loadAccessibleSite returns the site when actor may act on it. Sites owned by
// someone else are reported as not found.
func loadAccessibleSite(ctx context.Context, repo monitor.SiteRepository, siteID uint, actor authorization.Actor) (*monitor.Site, error) {
	site, err := repo.GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, monitor.ErrSiteNotFound) {
			return nil, apperrors.NewNotFoundError("site not found")
		}
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	if !actor.CanAccess(site.UserID()) {
		return nil, apperrors.NewNotFoundError("site not found")
	}
	return site, nil
}
