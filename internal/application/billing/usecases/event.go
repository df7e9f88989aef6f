package usecases

import "time"

type EventType string

const (
	EventCheckoutCompleted   EventType = "checkout.session.completed"
	EventInvoicePaid         EventType = "invoice.paid"
	EventSubscriptionDeleted EventType = "customer.subscription.deleted"
)

// WebhookEvent is a verified billing event reduced to the fields that drive
// plan transitions.
type WebhookEvent struct {
	ID   string
	Type EventType

	// UserID comes from checkout metadata and is only set on checkouts.
	UserID         uint
	CustomerID     string
	SubscriptionID string
	// PeriodEnd is the end of the first invoice line period.
	PeriodEnd *time.Time
}

type ApplyResult struct {
	EventID      string    `json:"event_id"`
	Type         EventType `json:"type"`
	Duplicate    bool      `json:"duplicate"`
	Ignored      bool      `json:"ignored"`
	UsersUpdated int       `json:"users_updated"`
}
