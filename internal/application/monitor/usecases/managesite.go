package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type SiteCommand struct {
	SiteID uint
	Actor  authorization.Actor
}

type DeleteSiteUseCase struct {
	siteRepo monitor.SiteRepository
	logger   logger.Interface
}

func NewDeleteSiteUseCase(siteRepo monitor.SiteRepository, logger logger.Interface) *DeleteSiteUseCase {
	return &DeleteSiteUseCase{siteRepo: siteRepo, logger: logger}
}

// Execute removes the site together with its probe history.
func (uc *DeleteSiteUseCase) Execute(ctx context.Context, cmd SiteCommand) error {
	site, err := loadAccessibleSite(ctx, uc.siteRepo, cmd.SiteID, cmd.Actor)
	if err != nil {
		return err
	}

	if err := uc.siteRepo.Delete(ctx, site.ID()); err != nil {
		uc.logger.Errorw("failed to delete site", "site_id", site.ID(), "error", err)
		return fmt.Errorf("failed to delete site: %w", err)
	}

	uc.logger.Infow("site deleted", "site_id", site.ID(), "user_id", cmd.Actor.UserID)
	return nil
}

type ToggleSiteUseCase struct {
	siteRepo monitor.SiteRepository
	logger   logger.Interface
}

func NewToggleSiteUseCase(siteRepo monitor.SiteRepository, logger logger.Interface) *ToggleSiteUseCase {
	return &ToggleSiteUseCase{siteRepo: siteRepo, logger: logger}
}

func (uc *ToggleSiteUseCase) Execute(ctx context.Context, cmd SiteCommand) (*dto.SiteResponse, error) {
	site, err := loadAccessibleSite(ctx, uc.siteRepo, cmd.SiteID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	site.Toggle()
	if err := uc.siteRepo.Update(ctx, site); err != nil {
		uc.logger.Errorw("failed to update site", "site_id", site.ID(), "error", err)
		return nil, fmt.Errorf("failed to update site: %w", err)
	}

	uc.logger.Infow("site toggled", "site_id", site.ID(), "is_active", site.IsActive())
	return dto.ToSiteResponse(site), nil
}
