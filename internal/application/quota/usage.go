package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/user"
)

// KindUsage is one row of a usage summary.
type KindUsage struct {
	Kind      plan.ResourceKind `json:"kind"`
	Current   int64             `json:"current"`
	Limit     plan.Limit        `json:"limit"`
	Allowed   bool              `json:"allowed"`
	Remaining *int64            `json:"remaining"`
}

// UsageSummary reports every metered kind for a user.
type UsageSummary struct {
	UserID  uint        `json:"user_id"`
	Tier    plan.Tier   `json:"plan"`
	IsAdmin bool        `json:"is_admin"`
	Kinds   []KindUsage `json:"kinds"`
}

// Usage counts each kind, including for admins, so dashboards can show real
// numbers next to an unlimited ceiling.
func (e *Evaluator) Usage(ctx context.Context, userID uint) (*UsageSummary, error) {
	subject, err := e.subjects.GetSubject(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load subject: %w", err)
	}

	summary := &UsageSummary{
		UserID:  userID,
		Tier:    subject.Tier,
		IsAdmin: subject.IsAdmin,
		Kinds:   make([]KindUsage, 0, len(plan.AllResourceKinds())),
	}

	for _, kind := range plan.AllResourceKinds() {
		current, err := e.counter.Count(ctx, userID, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", kind, err)
		}

		limit := plan.Ceiling(subject.Tier, kind)
		if subject.IsAdmin {
			limit = plan.Unlimited()
		}

		row := KindUsage{
			Kind:    kind,
			Current: current,
			Limit:   limit,
			Allowed: limit.Allows(current),
		}
		if n, bounded := limit.Remaining(current); bounded {
			row.Remaining = &n
		}
		summary.Kinds = append(summary.Kinds, row)
	}

	return summary, nil
}
