package usecases

import (
	"context"
	"time"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/domain/plan"
)

// Prober performs one liveness check. Failures are reported in the outcome,
// never as an error.
type Prober interface {
	Probe(ctx context.Context, url string) monitor.Outcome
}

// QuotaGuard rejects creations beyond the plan ceiling.
type QuotaGuard interface {
	Require(ctx context.Context, userID uint, kind plan.ResourceKind) error
}

// Recorder observes probes and cycles. Optional.
type Recorder interface {
	RecordProbe(outcome monitor.Outcome)
	RecordCycle(duration time.Duration, checked int, pruned int64)
}
