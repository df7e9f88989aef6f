package monitor

import (
	"context"
	"time"
)

// Scope selects the sites a cycle visits. A zero UserID means every owner.
type Scope struct {
	UserID uint
}

// All is the scope of the periodic cycle.
func All() Scope { return Scope{} }

// ForUser limits a cycle to one owner's sites.
func ForUser(userID uint) Scope { return Scope{UserID: userID} }

func (s Scope) IsAll() bool { return s.UserID == 0 }

type SiteRepository interface {
	Create(ctx context.Context, site *Site) error
	GetByID(ctx context.Context, id uint) (*Site, error)
	// ListByOwner returns a user's sites; userID 0 lists every site.
	ListByOwner(ctx context.Context, userID uint) ([]*Site, error)
	ListActive(ctx context.Context, scope Scope) ([]*Site, error)
	Update(ctx context.Context, site *Site) error
	// Delete removes the site and its check results.
	Delete(ctx context.Context, id uint) error
}

// UptimeStats aggregates results for one site over a window.
type UptimeStats struct {
	SiteID uint
	Up     int64
	Total  int64
}

type CheckRepository interface {
	Insert(ctx context.Context, result *CheckResult) error
	ListBySite(ctx context.Context, siteID uint, limit int) ([]*CheckResult, error)
	// LatestBySites maps site id to its most recent result. Sites without
	// results are absent.
	LatestBySites(ctx context.Context, siteIDs []uint) (map[uint]*CheckResult, error)
	StatsSince(ctx context.Context, siteIDs []uint, since time.Time) (map[uint]UptimeStats, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
