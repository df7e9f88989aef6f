// Package payment verifies and decodes billing provider webhooks.
package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/orris-inc/toolbox/internal/application/billing/usecases"
)

var (
	ErrWebhookNotConfigured = errors.New("stripe webhook secret not configured")
	ErrInvalidSignature     = errors.New("invalid stripe signature")
)

// StripeWebhookVerifier checks the Stripe-Signature header and converts the
// event payload into a WebhookEvent.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret}
}

func (v *StripeWebhookVerifier) Verify(payload []byte, signature string) (*usecases.WebhookEvent, error) {
	if v.secret == "" {
		return nil, ErrWebhookNotConfigured
	}
	if signature == "" {
		return nil, ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	evt := &usecases.WebhookEvent{
		ID:   event.ID,
		Type: usecases.EventType(event.Type),
	}
	if event.Data == nil {
		return evt, nil
	}

	switch evt.Type {
	case usecases.EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		if raw := session.Metadata["userId"]; raw != "" {
			// Non-numeric metadata leaves UserID zero and the event is skipped.
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				evt.UserID = uint(id)
			}
		}
		if session.Customer != nil {
			evt.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			evt.SubscriptionID = session.Subscription.ID
		}

	case usecases.EventInvoicePaid:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		if invoice.Customer != nil {
			evt.CustomerID = invoice.Customer.ID
		}
		if invoice.Lines != nil && len(invoice.Lines.Data) > 0 {
			if period := invoice.Lines.Data[0].Period; period != nil && period.End > 0 {
				end := time.Unix(period.End, 0).UTC()
				evt.PeriodEnd = &end
			}
		}

	case usecases.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		if sub.Customer != nil {
			evt.CustomerID = sub.Customer.ID
		}
	}

	return evt, nil
}
