package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// LabelSanitizer strips markup from short display text.
type LabelSanitizer interface {
	StripTags(text string) string
}

type AddSiteCommand struct {
	UserID uint
	URL    string
	Label  string
}

type AddSiteExecutor interface {
	Execute(ctx context.Context, cmd AddSiteCommand) (*dto.SiteResponse, error)
}

type AddSiteUseCase struct {
	siteRepo  monitor.SiteRepository
	quota     QuotaGuard
	sanitizer LabelSanitizer
	logger    logger.Interface
}

func NewAddSiteUseCase(
	siteRepo monitor.SiteRepository,
	quota QuotaGuard,
	sanitizer LabelSanitizer,
	logger logger.Interface,
) *AddSiteUseCase {
	return &AddSiteUseCase{
		siteRepo:  siteRepo,
		quota:     quota,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *AddSiteUseCase) Execute(ctx context.Context, cmd AddSiteCommand) (*dto.SiteResponse, error) {
	label := cmd.Label
	if uc.sanitizer != nil {
		label = uc.sanitizer.StripTags(label)
	}

	site, err := monitor.NewSite(cmd.UserID, cmd.URL, label)
	if err != nil {
		if errors.Is(err, monitor.ErrInvalidSiteURL) || errors.Is(err, monitor.ErrLabelTooLong) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, fmt.Errorf("failed to build site: %w", err)
	}

	if err := uc.quota.Require(ctx, cmd.UserID, plan.ResourceSites); err != nil {
		return nil, err
	}

	if err := uc.siteRepo.Create(ctx, site); err != nil {
		uc.logger.Errorw("failed to persist site", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	uc.logger.Infow("site added", "site_id", site.ID(), "user_id", cmd.UserID, "url", site.URL())
	return dto.ToSiteResponse(site), nil
}
