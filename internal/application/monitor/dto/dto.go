package dto

import (
	"time"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
)

// CheckResultResponse is one probe result as rendered by the API.
type CheckResultResponse struct {
	ID         uint      `json:"id,omitempty"`
	SiteID     uint      `json:"site_id"`
	CheckedAt  time.Time `json:"checked_at"`
	IsUp       bool      `json:"is_up"`
	StatusCode *int      `json:"status_code"`
	LatencyMs  *int64    `json:"latency_ms"`
	Error      *string   `json:"error"`
}

type SiteResponse struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user_id"`
	URL         string               `json:"url"`
	Label       string               `json:"label,omitempty"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	LatestCheck *CheckResultResponse `json:"latest_check"`
	// Uptime24h is the share of up results in the last 24 hours, nil without data.
	Uptime24h *float64 `json:"uptime_24h"`
}

func ToCheckResultResponse(r *monitor.CheckResult) *CheckResultResponse {
	if r == nil {
		return nil
	}
	return &CheckResultResponse{
		ID:         r.ID(),
		SiteID:     r.SiteID(),
		CheckedAt:  r.CheckedAt(),
		IsUp:       r.IsUp(),
		StatusCode: r.StatusCode(),
		LatencyMs:  r.LatencyMs(),
		Error:      r.Error(),
	}
}

func ToSiteResponse(s *monitor.Site) *SiteResponse {
	return &SiteResponse{
		ID:        s.ID(),
		UserID:    s.UserID(),
		URL:       s.URL(),
		Label:     s.Label(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
	}
}

// ProbeReport is one target's line in a cycle report.
type ProbeReport struct {
	SiteID     uint    `json:"site_id"`
	URL        string  `json:"url"`
	IsUp       bool    `json:"is_up"`
	StatusCode *int    `json:"status_code"`
	LatencyMs  int64   `json:"latency_ms"`
	Error      *string `json:"error"`
	Persisted  bool    `json:"persisted"`
}

// CycleReport summarizes one periodic run.
type CycleReport struct {
	Checked         int           `json:"checked"`
	Up              int           `json:"up"`
	Down            int           `json:"down"`
	PersistFailures int           `json:"persist_failures"`
	Pruned          int64         `json:"pruned"`
	PruneError      string        `json:"prune_error,omitempty"`
	StartedAt       time.Time     `json:"started_at"`
	Duration        time.Duration `json:"duration_ns"`
	Results         []ProbeReport `json:"results"`
}
