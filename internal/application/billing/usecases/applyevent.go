package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/shared/db"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// EventClaimer deduplicates redelivered events.
type EventClaimer interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

// ApplyWebhookEventUseCase moves users between tiers in response to billing
// events. Every update assigns absolute values, so applying an event twice
// leaves the same state.
type ApplyWebhookEventUseCase struct {
	userRepo   user.Repository
	claims     EventClaimer
	transactor db.Transactor
	logger     logger.Interface
}

func NewApplyWebhookEventUseCase(
	userRepo user.Repository,
	claims EventClaimer,
	transactor db.Transactor,
	logger logger.Interface,
) *ApplyWebhookEventUseCase {
	return &ApplyWebhookEventUseCase{
		userRepo:   userRepo,
		claims:     claims,
		transactor: transactor,
		logger:     logger,
	}
}

func (uc *ApplyWebhookEventUseCase) Execute(ctx context.Context, evt WebhookEvent) (*ApplyResult, error) {
	result := &ApplyResult{EventID: evt.ID, Type: evt.Type}

	if !isHandled(evt.Type) {
		uc.logger.Debugw("billing event ignored", "event_id", evt.ID, "type", evt.Type)
		result.Ignored = true
		return result, nil
	}

	claimed, err := uc.claims.Claim(ctx, evt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim billing event: %w", err)
	}
	if !claimed {
		uc.logger.Infow("billing event already processed", "event_id", evt.ID, "type", evt.Type)
		result.Duplicate = true
		return result, nil
	}

	err = uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.apply(txCtx, evt)
		result.UsersUpdated = n
		return err
	})
	if err != nil {
		if releaseErr := uc.claims.Release(ctx, evt.ID); releaseErr != nil {
			uc.logger.Errorw("failed to release billing event claim", "event_id", evt.ID, "error", releaseErr)
		}
		uc.logger.Errorw("failed to apply billing event", "event_id", evt.ID, "type", evt.Type, "error", err)
		return nil, fmt.Errorf("failed to apply billing event: %w", err)
	}

	uc.logger.Infow("billing event applied",
		"event_id", evt.ID,
		"type", evt.Type,
		"users_updated", result.UsersUpdated,
	)
	return result, nil
}

func isHandled(t EventType) bool {
	switch t {
	case EventCheckoutCompleted, EventInvoicePaid, EventSubscriptionDeleted:
		return true
	}
	return false
}

func (uc *ApplyWebhookEventUseCase) apply(ctx context.Context, evt WebhookEvent) (int, error) {
	switch evt.Type {
	case EventCheckoutCompleted:
		return uc.applyCheckout(ctx, evt)
	case EventInvoicePaid:
		if evt.CustomerID == "" || evt.PeriodEnd == nil {
			return 0, nil
		}
		return uc.updateCustomer(ctx, evt.CustomerID, func(u *user.User) {
			u.RenewPremium(*evt.PeriodEnd)
		})
	case EventSubscriptionDeleted:
		if evt.CustomerID == "" {
			return 0, nil
		}
		return uc.updateCustomer(ctx, evt.CustomerID, func(u *user.User) {
			u.DowngradeToFree()
		})
	}
	return 0, nil
}

func (uc *ApplyWebhookEventUseCase) applyCheckout(ctx context.Context, evt WebhookEvent) (int, error) {
	if evt.UserID == 0 {
		uc.logger.Warnw("checkout without user metadata", "event_id", evt.ID)
		return 0, nil
	}

	u, err := uc.userRepo.GetByID(ctx, evt.UserID)
	if err != nil {
		// A deleted account cannot be upgraded; redelivery would not help.
		if errors.Is(err, user.ErrUserNotFound) {
			uc.logger.Warnw("checkout for unknown user", "event_id", evt.ID, "user_id", evt.UserID)
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load user: %w", err)
	}

	u.ActivatePremium(evt.CustomerID, evt.SubscriptionID)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return 1, nil
}

func (uc *ApplyWebhookEventUseCase) updateCustomer(ctx context.Context, customerID string, change func(*user.User)) (int, error) {
	users, err := uc.userRepo.ListByStripeCustomerID(ctx, customerID)
	if err != nil {
		return 0, fmt.Errorf("failed to list users by customer: %w", err)
	}

	for _, u := range users {
		change(u)
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return 0, fmt.Errorf("failed to update user %d: %w", u.ID(), err)
		}
	}
	return len(users), nil
}
