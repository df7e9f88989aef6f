// Package quota decides whether a user may create one more resource of a kind.
package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/user"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// Subject is the quota view of a user.
type Subject struct {
	UserID  uint
	IsAdmin bool
	Tier    plan.Tier
}

// SubjectReader loads a subject. It returns user.ErrUserNotFound when the
// user does not exist.
type SubjectReader interface {
	GetSubject(ctx context.Context, userID uint) (*Subject, error)
}

// ResourceCounter counts the committed rows a user owns for a kind.
type ResourceCounter interface {
	Count(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error)
}

// DecisionRecorder observes evaluations. Optional.
type DecisionRecorder interface {
	RecordQuotaDecision(kind plan.ResourceKind, allowed bool)
}

// Decision is the outcome of one evaluation. Current is zero for admins and
// unknown users, where no count is taken.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Current int64      `json:"current"`
	Limit   plan.Limit `json:"limit"`
}

// Remaining returns how many more resources the subject may create. The
// second value is false when the limit is unlimited.
func (d Decision) Remaining() (int64, bool) {
	return d.Limit.Remaining(d.Current)
}

// Evaluator answers the quota question. The check is advisory: two concurrent
// creations may both be allowed at current == limit-1.
type Evaluator struct {
	subjects SubjectReader
	counter  ResourceCounter
	recorder DecisionRecorder
	logger   logger.Interface
}

func NewEvaluator(subjects SubjectReader, counter ResourceCounter, logger logger.Interface) *Evaluator {
	return &Evaluator{
		subjects: subjects,
		counter:  counter,
		logger:   logger,
	}
}

// SetRecorder sets the decision recorder (optional dependency injection)
func (e *Evaluator) SetRecorder(recorder DecisionRecorder) {
	e.recorder = recorder
}

// Evaluate never fails for a missing user; it denies with a zero limit.
// Data-layer failures are returned wrapped.
func (e *Evaluator) Evaluate(ctx context.Context, userID uint, kind plan.ResourceKind) (*Decision, error) {
	subject, err := e.subjects.GetSubject(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			e.record(kind, false)
			return &Decision{Allowed: false, Current: 0, Limit: plan.Bounded(0)}, nil
		}
		e.logger.Errorw("failed to load quota subject", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load subject: %w", err)
	}

	if subject.IsAdmin {
		e.record(kind, true)
		return &Decision{Allowed: true, Current: 0, Limit: plan.Unlimited()}, nil
	}

	limit := plan.Ceiling(subject.Tier, kind)
	current, err := e.counter.Count(ctx, userID, kind)
	if err != nil {
		e.logger.Errorw("failed to count resources", "user_id", userID, "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to count %s: %w", kind, err)
	}

	allowed := limit.Allows(current)
	e.record(kind, allowed)
	return &Decision{Allowed: allowed, Current: current, Limit: limit}, nil
}

// Require returns a quota_exceeded AppError when creation is not allowed.
func (e *Evaluator) Require(ctx context.Context, userID uint, kind plan.ResourceKind) error {
	decision, err := e.Evaluate(ctx, userID, kind)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		e.logger.Infow("quota denied", "user_id", userID, "kind", kind,
			"current", decision.Current, "limit", decision.Limit.String())
		return apperrors.NewQuotaExceededError(kind.String(), decision.Current, decision.Limit.String())
	}
	return nil
}

func (e *Evaluator) record(kind plan.ResourceKind, allowed bool) {
	if e.recorder != nil {
		e.recorder.RecordQuotaDecision(kind, allowed)
	}
}
