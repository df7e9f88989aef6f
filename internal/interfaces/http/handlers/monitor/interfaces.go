package monitor

import (
	"context"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/application/monitor/usecases"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
)

type addSiteUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddSiteCommand) (*dto.SiteResponse, error)
}

type listSitesUseCase interface {
	Execute(ctx context.Context, query usecases.ListSitesQuery) ([]*dto.SiteResponse, error)
}

type deleteSiteUseCase interface {
	Execute(ctx context.Context, cmd usecases.SiteCommand) error
}

type toggleSiteUseCase interface {
	Execute(ctx context.Context, cmd usecases.SiteCommand) (*dto.SiteResponse, error)
}

type checkSiteNowUseCase interface {
	Execute(ctx context.Context, cmd usecases.SiteCommand) (*dto.CheckResultResponse, error)
}

type listChecksUseCase interface {
	Execute(ctx context.Context, query usecases.ListChecksQuery) ([]*dto.CheckResultResponse, error)
}

type runCycleUseCase interface {
	Execute(ctx context.Context, scope monitor.Scope) (*dto.CycleReport, error)
}
