package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	MinPasswordLength = 8
)

// User is a tenant of the dashboard. It owns links, QR codes, monitored sites
// and clients, and its plan tier gates how many of each it may create.
type User struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.UserRole
	plan         plan.Tier
	billing      Billing
	emitter      *EmitterSettings
	createdAt    time.Time
	updatedAt    time.Time
}

// Billing links a user to its payment provider records.
type Billing struct {
	CustomerID     *string
	SubscriptionID *string
	PlanExpiresAt  *time.Time
}

// NewUser creates a free-tier user. passwordHash must already be hashed.
func NewUser(username, passwordHash string, role authorization.UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, ErrInvalidUsername
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		plan:         plan.TierFree,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, username, passwordHash string, role authorization.UserRole, tier plan.Tier,
	billing Billing, emitter *EmitterSettings, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		plan:         tier,
		billing:      billing,
		emitter:      emitter,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) Plan() plan.Tier {
	return u.plan
}

func (u *User) Billing() Billing {
	return u.billing
}

func (u *User) EmitterSettings() *EmitterSettings {
	return u.emitter
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// EffectivePlan is the tier used for display. Admins are shown as premium; the
// quota evaluator bypasses them explicitly rather than relying on this.
func (u *User) EffectivePlan() plan.Tier {
	if u.IsAdmin() {
		return plan.TierPremium
	}
	return u.plan
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.touch()
	return nil
}

// ChangePlan sets the tier directly. Used by administrators.
func (u *User) ChangePlan(tier plan.Tier) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid plan tier: %s", tier)
	}
	u.plan = tier
	u.touch()
	return nil
}

// ActivatePremium is applied when a checkout completes.
func (u *User) ActivatePremium(customerID, subscriptionID string) {
	u.plan = plan.TierPremium
	if customerID != "" {
		u.billing.CustomerID = &customerID
	}
	if subscriptionID != "" {
		u.billing.SubscriptionID = &subscriptionID
	}
	u.touch()
}

// RenewPremium is applied when an invoice is paid for the current period.
func (u *User) RenewPremium(periodEnd time.Time) {
	u.plan = plan.TierPremium
	end := periodEnd.UTC()
	u.billing.PlanExpiresAt = &end
	u.touch()
}

// DowngradeToFree is applied when the subscription is deleted. The customer id
// is kept so a later checkout reuses it.
func (u *User) DowngradeToFree() {
	u.plan = plan.TierFree
	u.billing.SubscriptionID = nil
	u.billing.PlanExpiresAt = nil
	u.touch()
}

func (u *User) UpdateEmitterSettings(settings EmitterSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	u.emitter = &settings
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
}

// ValidatePassword checks a plaintext password before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
