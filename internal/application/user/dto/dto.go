package dto

import (
	"time"

	"github.com/orris-inc/toolbox/internal/application/quota"
	"github.com/orris-inc/toolbox/internal/domain/user"
)

// UserResponse is the public view of a user. The password hash never leaves
// the application layer.
type UserResponse struct {
	ID               uint       `json:"id"`
	Username         string     `json:"username"`
	Role             string     `json:"role"`
	Plan             string     `json:"plan"`
	EffectivePlan    string     `json:"effective_plan"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
	PlanExpiresAt    *time.Time `json:"plan_expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// AdminUserResponse adds per-kind usage for the user list.
type AdminUserResponse struct {
	UserResponse
	Usage []quota.KindUsage `json:"usage"`
}

// AccountResponse is what a user sees about themself.
type AccountResponse struct {
	User    UserResponse          `json:"user"`
	Usage   *quota.UsageSummary   `json:"usage"`
	Emitter *user.EmitterSettings `json:"emitter"`
}

func ToUserResponse(u *user.User) UserResponse {
	b := u.Billing()
	return UserResponse{
		ID:               u.ID(),
		Username:         u.Username(),
		Role:             u.Role().String(),
		Plan:             u.Plan().String(),
		EffectivePlan:    u.EffectivePlan().String(),
		StripeCustomerID: b.CustomerID,
		PlanExpiresAt:    b.PlanExpiresAt,
		CreatedAt:        u.CreatedAt(),
	}
}
