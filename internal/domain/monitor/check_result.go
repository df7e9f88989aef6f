package monitor

import (
	"fmt"
	"time"
)

// CheckResult is one immutable probe outcome for a site.
type CheckResult struct {
	id         uint
	siteID     uint
	checkedAt  time.Time
	isUp       bool
	statusCode *int
	latencyMs  *int64
	errMsg     *string
}

// Outcome is what a prober observed. It carries no identity.
type Outcome struct {
	IsUp       bool
	StatusCode *int
	LatencyMs  int64
	Error      *string
}

func NewCheckResult(siteID uint, checkedAt time.Time, outcome Outcome) (*CheckResult, error) {
	if siteID == 0 {
		return nil, fmt.Errorf("site ID is required")
	}
	latency := outcome.LatencyMs
	return &CheckResult{
		siteID:     siteID,
		checkedAt:  checkedAt.UTC(),
		isUp:       outcome.IsUp,
		statusCode: outcome.StatusCode,
		latencyMs:  &latency,
		errMsg:     outcome.Error,
	}, nil
}

// ReconstructCheckResult rebuilds a result from persistence.
func ReconstructCheckResult(id, siteID uint, checkedAt time.Time, isUp bool, statusCode *int, latencyMs *int64, errMsg *string) *CheckResult {
	return &CheckResult{
		id:         id,
		siteID:     siteID,
		checkedAt:  checkedAt,
		isUp:       isUp,
		statusCode: statusCode,
		latencyMs:  latencyMs,
		errMsg:     errMsg,
	}
}

func (r *CheckResult) ID() uint             { return r.id }
func (r *CheckResult) SiteID() uint         { return r.siteID }
func (r *CheckResult) CheckedAt() time.Time { return r.checkedAt }
func (r *CheckResult) IsUp() bool           { return r.isUp }
func (r *CheckResult) StatusCode() *int     { return r.statusCode }
func (r *CheckResult) LatencyMs() *int64    { return r.latencyMs }
func (r *CheckResult) Error() *string       { return r.errMsg }

func (r *CheckResult) SetID(id uint) {
	if r.id == 0 {
		r.id = id
	}
}

// UptimeRatio returns the fraction of up results, or nil for an empty window.
func UptimeRatio(up, total int64) *float64 {
	if total <= 0 {
		return nil
	}
	ratio := float64(up) / float64(total)
	return &ratio
}
