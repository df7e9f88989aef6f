package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const uptimeWindow = 24 * time.Hour

type ListSitesQuery struct {
	Actor authorization.Actor
	// AllOwners lists every site. Only honored for admins.
	AllOwners bool
}

type ListSitesUseCase struct {
	siteRepo  monitor.SiteRepository
	checkRepo monitor.CheckRepository
	logger    logger.Interface
}

func NewListSitesUseCase(siteRepo monitor.SiteRepository, checkRepo monitor.CheckRepository, logger logger.Interface) *ListSitesUseCase {
	return &ListSitesUseCase{siteRepo: siteRepo, checkRepo: checkRepo, logger: logger}
}

func (uc *ListSitesUseCase) Execute(ctx context.Context, query ListSitesQuery) ([]*dto.SiteResponse, error) {
	owner := query.Actor.UserID
	if query.AllOwners && query.Actor.IsAdmin() {
		owner = 0
	}

	sites, err := uc.siteRepo.ListByOwner(ctx, owner)
	if err != nil {
		uc.logger.Errorw("failed to list sites", "user_id", query.Actor.UserID, "error", err)
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	if len(sites) == 0 {
		return []*dto.SiteResponse{}, nil
	}

	ids := make([]uint, 0, len(sites))
	for _, s := range sites {
		ids = append(ids, s.ID())
	}

	latest, err := uc.checkRepo.LatestBySites(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest checks: %w", err)
	}
	stats, err := uc.checkRepo.StatsSince(ctx, ids, biztime.Since(uptimeWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to load uptime stats: %w", err)
	}

	responses := make([]*dto.SiteResponse, 0, len(sites))
	for _, s := range sites {
		resp := dto.ToSiteResponse(s)
		resp.LatestCheck = dto.ToCheckResultResponse(latest[s.ID()])
		if st, ok := stats[s.ID()]; ok {
			resp.Uptime24h = monitor.UptimeRatio(st.Up, st.Total)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

type ListChecksQuery struct {
	SiteID uint
	Actor  authorization.Actor
	Limit  int
}

type ListChecksUseCase struct {
	siteRepo  monitor.SiteRepository
	checkRepo monitor.CheckRepository
}

func NewListChecksUseCase(siteRepo monitor.SiteRepository, checkRepo monitor.CheckRepository) *ListChecksUseCase {
	return &ListChecksUseCase{siteRepo: siteRepo, checkRepo: checkRepo}
}

// Execute returns the most recent results first.
func (uc *ListChecksUseCase) Execute(ctx context.Context, query ListChecksQuery) ([]*dto.CheckResultResponse, error) {
	site, err := loadAccessibleSite(ctx, uc.siteRepo, query.SiteID, query.Actor)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	results, err := uc.checkRepo.ListBySite(ctx, site.ID(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}

	out := make([]*dto.CheckResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToCheckResultResponse(r))
	}
	return out, nil
}
