package usecases

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/goroutine"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const (
	defaultConcurrency = 16
	defaultRetention   = 30 * 24 * time.Hour
)

type CycleConfig struct {
	// Concurrency bounds simultaneous probes.
	Concurrency int
	// Retention is how long results are kept before pruning.
	Retention time.Duration
}

type RunCycleExecutor interface {
	Execute(ctx context.Context, scope monitor.Scope) (*dto.CycleReport, error)
}

// RunCycleUseCase probes every active site in scope and prunes old results.
// At most one cycle runs at a time per instance; an overlapping call returns
// monitor.ErrCycleInProgress without doing any work.
type RunCycleUseCase struct {
	siteRepo  monitor.SiteRepository
	checkRepo monitor.CheckRepository
	prober    Prober
	recorder  Recorder
	cfg       CycleConfig
	logger    logger.Interface

	running atomic.Bool
}

func NewRunCycleUseCase(
	siteRepo monitor.SiteRepository,
	checkRepo monitor.CheckRepository,
	prober Prober,
	cfg CycleConfig,
	logger logger.Interface,
) *RunCycleUseCase {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.Retention <= 0 {
		cfg.Retention = defaultRetention
	}
	return &RunCycleUseCase{
		siteRepo:  siteRepo,
		checkRepo: checkRepo,
		prober:    prober,
		cfg:       cfg,
		logger:    logger,
	}
}

// SetRecorder sets the metrics recorder (optional dependency injection)
func (uc *RunCycleUseCase) SetRecorder(recorder Recorder) {
	uc.recorder = recorder
}

// IsRunning reports whether a cycle currently holds the guard.
func (uc *RunCycleUseCase) IsRunning() bool {
	return uc.running.Load()
}

func (uc *RunCycleUseCase) Execute(ctx context.Context, scope monitor.Scope) (*dto.CycleReport, error) {
	if !uc.running.CompareAndSwap(false, true) {
		uc.logger.Warnw("uptime cycle skipped, previous cycle still running")
		return nil, monitor.ErrCycleInProgress
	}
	defer uc.running.Store(false)

	startedAt := biztime.NowUTC()
	begin := time.Now()

	sites, err := uc.siteRepo.ListActive(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to list active sites", "error", err)
		return nil, fmt.Errorf("failed to list active sites: %w", err)
	}

	results := make([]dto.ProbeReport, len(sites))

	var g errgroup.Group
	g.SetLimit(uc.cfg.Concurrency)
	for i, site := range sites {
		g.Go(func() error {
			results[i] = uc.probeOne(ctx, site)
			return nil
		})
	}
	_ = g.Wait()

	report := &dto.CycleReport{
		Checked:   len(results),
		StartedAt: startedAt,
		Results:   results,
	}
	for _, r := range results {
		if r.IsUp {
			report.Up++
		} else {
			report.Down++
		}
		if !r.Persisted {
			report.PersistFailures++
		}
	}

	cutoff := biztime.NowUTC().Add(-uc.cfg.Retention)
	pruned, err := uc.checkRepo.DeleteOlderThan(context.WithoutCancel(ctx), cutoff)
	if err != nil {
		uc.logger.Errorw("failed to prune check results", "cutoff", cutoff, "error", err)
		report.PruneError = err.Error()
	}
	report.Pruned = pruned
	report.Duration = time.Since(begin)

	if uc.recorder != nil {
		uc.recorder.RecordCycle(report.Duration, report.Checked, report.Pruned)
	}

	uc.logger.Infow("uptime cycle completed",
		"scope_user_id", scope.UserID,
		"checked", report.Checked,
		"up", report.Up,
		"down", report.Down,
		"persist_failures", report.PersistFailures,
		"pruned", report.Pruned,
		"duration", report.Duration,
	)
	return report, nil
}

// probeOne never panics and never fails: a crashing probe is reported as a
// down, unpersisted target.
func (uc *RunCycleUseCase) probeOne(ctx context.Context, site *monitor.Site) (report dto.ProbeReport) {
	report = dto.ProbeReport{SiteID: site.ID(), URL: site.URL()}

	defer goroutine.Recover(uc.logger, "uptime-probe", func(r any) {
		msg := fmt.Sprintf("probe panicked: %v", r)
		report.IsUp = false
		report.Error = &msg
		report.Persisted = false
	})

	outcome := uc.prober.Probe(ctx, site.URL())
	report.IsUp = outcome.IsUp
	report.StatusCode = outcome.StatusCode
	report.LatencyMs = outcome.LatencyMs
	report.Error = outcome.Error

	if uc.recorder != nil {
		uc.recorder.RecordProbe(outcome)
	}

	result, err := monitor.NewCheckResult(site.ID(), biztime.NowUTC(), outcome)
	if err != nil {
		uc.logger.Errorw("failed to build check result", "site_id", site.ID(), "error", err)
		return report
	}
	// A probe that used up the caller's deadline still records its result.
	if err := uc.checkRepo.Insert(context.WithoutCancel(ctx), result); err != nil {
		uc.logger.Errorw("failed to persist check result", "site_id", site.ID(), "error", err)
		return report
	}

	report.Persisted = true
	return report
}
