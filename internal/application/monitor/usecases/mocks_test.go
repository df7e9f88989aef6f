package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/domain/plan"
)

type mockSiteRepository struct {
	CreateFunc      func(ctx context.Context, site *monitor.Site) error
	GetByIDFunc     func(ctx context.Context, id uint) (*monitor.Site, error)
	ListByOwnerFunc func(ctx context.Context, userID uint) ([]*monitor.Site, error)
	ListActiveFunc  func(ctx context.Context, scope monitor.Scope) ([]*monitor.Site, error)
	UpdateFunc      func(ctx context.Context, site *monitor.Site) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockSiteRepository) Create(ctx context.Context, site *monitor.Site) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, site)
	}
	return site.SetID(1)
}

func (m *mockSiteRepository) GetByID(ctx context.Context, id uint) (*monitor.Site, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, monitor.ErrSiteNotFound
}

func (m *mockSiteRepository) ListByOwner(ctx context.Context, userID uint) ([]*monitor.Site, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSiteRepository) ListActive(ctx context.Context, scope monitor.Scope) ([]*monitor.Site, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockSiteRepository) Update(ctx context.Context, site *monitor.Site) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, site)
	}
	return nil
}

func (m *mockSiteRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockCheckRepository struct {
	InsertFunc          func(ctx context.Context, result *monitor.CheckResult) error
	ListBySiteFunc      func(ctx context.Context, siteID uint, limit int) ([]*monitor.CheckResult, error)
	LatestBySitesFunc   func(ctx context.Context, siteIDs []uint) (map[uint]*monitor.CheckResult, error)
	StatsSinceFunc      func(ctx context.Context, siteIDs []uint, since time.Time) (map[uint]monitor.UptimeStats, error)
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)

	mu       sync.Mutex
	inserted []*monitor.CheckResult
}

func (m *mockCheckRepository) Insert(ctx context.Context, result *monitor.CheckResult) error {
	if m.InsertFunc != nil {
		if err := m.InsertFunc(ctx, result); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.inserted = append(m.inserted, result)
	m.mu.Unlock()
	return nil
}

func (m *mockCheckRepository) Inserted() []*monitor.CheckResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*monitor.CheckResult, len(m.inserted))
	copy(out, m.inserted)
	return out
}

func (m *mockCheckRepository) ListBySite(ctx context.Context, siteID uint, limit int) ([]*monitor.CheckResult, error) {
	if m.ListBySiteFunc != nil {
		return m.ListBySiteFunc(ctx, siteID, limit)
	}
	return nil, nil
}

func (m *mockCheckRepository) LatestBySites(ctx context.Context, siteIDs []uint) (map[uint]*monitor.CheckResult, error) {
	if m.LatestBySitesFunc != nil {
		return m.LatestBySitesFunc(ctx, siteIDs)
	}
	return map[uint]*monitor.CheckResult{}, nil
}

func (m *mockCheckRepository) StatsSince(ctx context.Context, siteIDs []uint, since time.Time) (map[uint]monitor.UptimeStats, error) {
	if m.StatsSinceFunc != nil {
		return m.StatsSinceFunc(ctx, siteIDs, since)
	}
	return map[uint]monitor.UptimeStats{}, nil
}

func (m *mockCheckRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

type mockProber struct {
	ProbeFunc func(ctx context.Context, url string) monitor.Outcome
}

func (m *mockProber) Probe(ctx context.Context, url string) monitor.Outcome {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, url)
	}
	code := 200
	return monitor.Outcome{IsUp: true, StatusCode: &code, LatencyMs: 12}
}

type mockQuotaGuard struct {
	RequireFunc func(ctx context.Context, userID uint, kind plan.ResourceKind) error
}

func (m *mockQuotaGuard) Require(ctx context.Context, userID uint, kind plan.ResourceKind) error {
	if m.RequireFunc != nil {
		return m.RequireFunc(ctx, userID, kind)
	}
	return nil
}

type mockRecorder struct {
	mu     sync.Mutex
	probes int
	cycles int
}

func (m *mockRecorder) RecordProbe(outcome monitor.Outcome) {
	m.mu.Lock()
	m.probes++
	m.mu.Unlock()
}

func (m *mockRecorder) RecordCycle(duration time.Duration, checked int, pruned int64) {
	m.mu.Lock()
	m.cycles++
	m.mu.Unlock()
}

func newTestSite(id, userID uint, url string, active bool) *monitor.Site {
	s, err := monitor.ReconstructSite(id, userID, url, "", active, time.Now().UTC(), time.Now().UTC())
	if err != nil {
		panic(err)
	}
	return s
}

func siteRepoWith(sites ...*monitor.Site) *mockSiteRepository {
	byID := make(map[uint]*monitor.Site, len(sites))
	for _, s := range sites {
		byID[s.ID()] = s
	}
	return &mockSiteRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*monitor.Site, error) {
			if s, ok := byID[id]; ok {
				return s, nil
			}
			return nil, monitor.ErrSiteNotFound
		},
		ListActiveFunc: func(ctx context.Context, scope monitor.Scope) ([]*monitor.Site, error) {
			var out []*monitor.Site
			for _, s := range sites {
				if s.IsActive() && (scope.IsAll() || s.UserID() == scope.UserID) {
					out = append(out, s)
				}
			}
			return out, nil
		},
		ListByOwnerFunc: func(ctx context.Context, userID uint) ([]*monitor.Site, error) {
			var out []*monitor.Site
			for _, s := range sites {
				if userID == 0 || s.UserID() == userID {
					out = append(out, s)
				}
			}
			return out, nil
		},
	}
}
