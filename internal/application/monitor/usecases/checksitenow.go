package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// CheckSiteNowUseCase probes one site on demand. It does not take the cycle
// guard and accepts inactive sites.
type CheckSiteNowUseCase struct {
	siteRepo  monitor.SiteRepository
	checkRepo monitor.CheckRepository
	prober    Prober
	recorder  Recorder
	logger    logger.Interface
}

func NewCheckSiteNowUseCase(
	siteRepo monitor.SiteRepository,
	checkRepo monitor.CheckRepository,
	prober Prober,
	logger logger.Interface,
) *CheckSiteNowUseCase {
	return &CheckSiteNowUseCase{
		siteRepo:  siteRepo,
		checkRepo: checkRepo,
		prober:    prober,
		logger:    logger,
	}
}

// SetRecorder sets the metrics recorder (optional dependency injection)
func (uc *CheckSiteNowUseCase) SetRecorder(recorder Recorder) {
	uc.recorder = recorder
}

func (uc *CheckSiteNowUseCase) Execute(ctx context.Context, cmd SiteCommand) (*dto.CheckResultResponse, error) {
	site, err := loadAccessibleSite(ctx, uc.siteRepo, cmd.SiteID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	outcome := uc.prober.Probe(ctx, site.URL())
	if uc.recorder != nil {
		uc.recorder.RecordProbe(outcome)
	}

	result, err := monitor.NewCheckResult(site.ID(), biztime.NowUTC(), outcome)
	if err != nil {
		return nil, fmt.Errorf("failed to build check result: %w", err)
	}
	if err := uc.checkRepo.Insert(ctx, result); err != nil {
		uc.logger.Errorw("failed to persist manual check", "site_id", site.ID(), "error", err)
		return nil, fmt.Errorf("failed to save check result: %w", err)
	}

	uc.logger.Infow("manual check completed",
		"site_id", site.ID(),
		"is_up", outcome.IsUp,
		"latency_ms", outcome.LatencyMs,
	)
	return dto.ToCheckResultResponse(result), nil
}
