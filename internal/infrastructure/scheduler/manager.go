// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/orris-inc/toolbox/internal/application/monitor/usecases"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const (
	UptimeCycleJobName = "uptime-cycle"

	DefaultUptimeInterval = 60 * time.Second
)

// SchedulerManager owns the gocron scheduler and the jobs registered on it.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler running in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// ========================================
// Uptime Jobs (interval, start immediately)
// ========================================

// RegisterUptimeCycle runs a probe cycle over every active site each interval.
// A started cycle is never cancelled from outside: each probe is bounded by the
// prober's own timeout. Singleton mode skips a tick while the previous run is
// still going.
func (m *SchedulerManager) RegisterUptimeCycle(cycle usecases.RunCycleExecutor, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultUptimeInterval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			m.runUptimeCycle(context.Background(), cycle)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("uptime", "probe", "prune"),
		gocron.WithName(UptimeCycleJobName),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered uptime cycle job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runUptimeCycle(ctx context.Context, cycle usecases.RunCycleExecutor) {
	m.logger.Debugw("uptime cycle task started")

	startTime := biztime.NowUTC()
	report, err := cycle.Execute(ctx, monitor.All())
	if err != nil {
		if errors.Is(err, monitor.ErrCycleInProgress) {
			m.logger.Debugw("uptime cycle already running, tick skipped")
			return
		}
		m.logger.Errorw("uptime cycle failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if report.Down > 0 || report.PersistFailures > 0 {
		m.logger.Warnw("uptime cycle found problems",
			"checked", report.Checked,
			"down", report.Down,
			"persist_failures", report.PersistFailures,
		)
	}
}

// ========================================
// Scheduler Lifecycle Methods
// ========================================

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
