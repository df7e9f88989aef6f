package usecases

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

func newRunCycle(sites *mockSiteRepository, checks *mockCheckRepository, prober Prober) *RunCycleUseCase {
	return NewRunCycleUseCase(sites, checks, prober, CycleConfig{Concurrency: 4, Retention: 30 * 24 * time.Hour}, logger.NewNopLogger())
}

func TestRunCycle_ProbesActiveSitesOnly(t *testing.T) {
	sites := siteRepoWith(
		newTestSite(1, 10, "https://a.example", true),
		newTestSite(2, 10, "https://b.example", false),
		newTestSite(3, 11, "https://c.example", true),
	)
	checks := &mockCheckRepository{}
	uc := newRunCycle(sites, checks, &mockProber{})

	report, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 2, report.Up)
	assert.Zero(t, report.PersistFailures)
	assert.Len(t, checks.Inserted(), 2)
	assert.False(t, uc.IsRunning())
}

func TestRunCycle_ScopedToOwner(t *testing.T) {
	sites := siteRepoWith(
		newTestSite(1, 10, "https://a.example", true),
		newTestSite(3, 11, "https://c.example", true),
	)
	uc := newRunCycle(sites, &mockCheckRepository{}, &mockProber{})

	report, err := uc.Execute(context.Background(), monitor.ForUser(11))
	require.NoError(t, err)

	require.Equal(t, 1, report.Checked)
	assert.Equal(t, uint(3), report.Results[0].SiteID)
}

func TestRunCycle_PersistFailureDoesNotAbortSiblings(t *testing.T) {
	sites := siteRepoWith(
		newTestSite(1, 10, "https://a.example", true),
		newTestSite(2, 10, "https://b.example", true),
		newTestSite(3, 10, "https://c.example", true),
	)
	checks := &mockCheckRepository{
		InsertFunc: func(ctx context.Context, result *monitor.CheckResult) error {
			if result.SiteID() == 2 {
				return errors.New("disk full")
			}
			return nil
		},
	}
	uc := newRunCycle(sites, checks, &mockProber{})

	report, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, 1, report.PersistFailures)
	assert.Len(t, checks.Inserted(), 2)
}

func TestRunCycle_RecoversPanickingProbe(t *testing.T) {
	sites := siteRepoWith(
		newTestSite(1, 10, "https://a.example", true),
		newTestSite(2, 10, "https://explode.example", true),
	)
	prober := &mockProber{
		ProbeFunc: func(ctx context.Context, url string) monitor.Outcome {
			if strings.Contains(url, "explode") {
				panic("boom")
			}
			code := 200
			return monitor.Outcome{IsUp: true, StatusCode: &code}
		},
	}
	checks := &mockCheckRepository{}
	uc := newRunCycle(sites, checks, prober)

	report, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Up)
	assert.Equal(t, 1, report.Down)
	assert.Len(t, checks.Inserted(), 1)

	var crashed bool
	for _, r := range report.Results {
		if r.SiteID == 2 {
			crashed = true
			require.NotNil(t, r.Error)
			assert.Contains(t, *r.Error, "boom")
			assert.False(t, r.Persisted)
		}
	}
	assert.True(t, crashed)
	assert.False(t, uc.IsRunning())
}

func TestRunCycle_PrunesByRetention(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetNowFunc(func() time.Time { return now })
	defer restore()

	var gotCutoff time.Time
	checks := &mockCheckRepository{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			gotCutoff = cutoff
			return 7, nil
		},
	}
	uc := newRunCycle(siteRepoWith(), checks, &mockProber{})

	report, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, int64(7), report.Pruned)
	assert.Equal(t, now.Add(-30*24*time.Hour), gotCutoff)
}

func TestRunCycle_PruneFailureIsReported(t *testing.T) {
	checks := &mockCheckRepository{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, errors.New("lock wait timeout")
		},
	}
	uc := newRunCycle(siteRepoWith(newTestSite(1, 1, "https://a.example", true)), checks, &mockProber{})

	report, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, "lock wait timeout", report.PruneError)
}

func TestRunCycle_OverlappingCallIsSkipped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once atomic.Bool

	prober := &mockProber{
		ProbeFunc: func(ctx context.Context, url string) monitor.Outcome {
			if once.CompareAndSwap(false, true) {
				close(started)
			}
			<-release
			return monitor.Outcome{IsUp: true}
		},
	}
	checks := &mockCheckRepository{}
	uc := newRunCycle(siteRepoWith(newTestSite(1, 1, "https://a.example", true)), checks, prober)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), monitor.All())
		done <- err
	}()

	<-started
	assert.True(t, uc.IsRunning())

	report, err := uc.Execute(context.Background(), monitor.All())
	assert.ErrorIs(t, err, monitor.ErrCycleInProgress)
	assert.Nil(t, report)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, checks.Inserted(), 1)

	_, err = uc.Execute(context.Background(), monitor.All())
	assert.NoError(t, err)
}

func TestRunCycle_ReleasesGuardOnListError(t *testing.T) {
	sites := &mockSiteRepository{
		ListActiveFunc: func(ctx context.Context, scope monitor.Scope) ([]*monitor.Site, error) {
			return nil, errors.New("db down")
		},
	}
	uc := newRunCycle(sites, &mockCheckRepository{}, &mockProber{})

	_, err := uc.Execute(context.Background(), monitor.All())
	require.Error(t, err)
	assert.False(t, uc.IsRunning())
}

func TestRunCycle_BoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	prober := &mockProber{
		ProbeFunc: func(ctx context.Context, url string) monitor.Outcome {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			active.Add(-1)
			return monitor.Outcome{IsUp: true}
		},
	}

	var all []*monitor.Site
	for i := uint(1); i <= 12; i++ {
		all = append(all, newTestSite(i, 1, "https://a.example", true))
	}
	uc := NewRunCycleUseCase(siteRepoWith(all...), &mockCheckRepository{}, prober, CycleConfig{Concurrency: 3}, logger.NewNopLogger())

	report, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 12, report.Checked)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRunCycle_RecordsMetrics(t *testing.T) {
	recorder := &mockRecorder{}
	uc := newRunCycle(siteRepoWith(newTestSite(1, 1, "https://a.example", true)), &mockCheckRepository{}, &mockProber{})
	uc.SetRecorder(recorder)

	_, err := uc.Execute(context.Background(), monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 1, recorder.probes)
	assert.Equal(t, 1, recorder.cycles)
}

func TestRunCycle_ExpiredDeadlineStillPersistsEveryResult(t *testing.T) {
	sites := siteRepoWith(
		newTestSite(1, 10, "https://fast.example", true),
		newTestSite(2, 10, "https://hang.example", true),
	)
	// The repository honours cancellation the way gorm does.
	var pruneErr error
	checks := &mockCheckRepository{
		InsertFunc: func(ctx context.Context, _ *monitor.CheckResult) error { return ctx.Err() },
		DeleteOlderThanFunc: func(ctx context.Context, _ time.Time) (int64, error) {
			pruneErr = ctx.Err()
			return 0, pruneErr
		},
	}
	prober := &mockProber{ProbeFunc: func(ctx context.Context, url string) monitor.Outcome {
		if strings.Contains(url, "hang") {
			<-ctx.Done()
			msg := "Timeout (10s)"
			return monitor.Outcome{IsUp: false, LatencyMs: 50, Error: &msg}
		}
		code := 200
		return monitor.Outcome{IsUp: true, StatusCode: &code, LatencyMs: 5}
	}}
	uc := newRunCycle(sites, checks, prober)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	report, err := uc.Execute(ctx, monitor.All())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Down)
	assert.Zero(t, report.PersistFailures)
	assert.Len(t, checks.Inserted(), 2)
	assert.NoError(t, pruneErr)
	assert.Empty(t, report.PruneError)
}
