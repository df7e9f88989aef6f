package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  alice  ", "hash", authorization.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, plan.TierFree, u.Plan())
	assert.False(t, u.IsAdmin())

	_, err = NewUser("al", "hash", authorization.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, err = NewUser("alice", "", authorization.RoleUser)
	assert.Error(t, err)
}

func TestUser_BillingTransitions(t *testing.T) {
	u, err := NewUser("alice", "hash", authorization.RoleUser)
	require.NoError(t, err)

	u.ActivatePremium("cus_123", "sub_456")
	assert.Equal(t, plan.TierPremium, u.Plan())
	require.NotNil(t, u.Billing().CustomerID)
	assert.Equal(t, "cus_123", *u.Billing().CustomerID)

	periodEnd := time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)
	u.RenewPremium(periodEnd)
	require.NotNil(t, u.Billing().PlanExpiresAt)
	assert.True(t, periodEnd.Equal(*u.Billing().PlanExpiresAt))

	u.DowngradeToFree()
	assert.Equal(t, plan.TierFree, u.Plan())
	assert.Nil(t, u.Billing().SubscriptionID)
	assert.Nil(t, u.Billing().PlanExpiresAt)
	assert.NotNil(t, u.Billing().CustomerID)
}

func TestUser_TransitionsAreIdempotent(t *testing.T) {
	u, err := NewUser("bob", "hash", authorization.RoleUser)
	require.NoError(t, err)

	u.ActivatePremium("cus_1", "sub_1")
	u.ActivatePremium("cus_1", "sub_1")
	assert.Equal(t, plan.TierPremium, u.Plan())
	assert.Equal(t, "sub_1", *u.Billing().SubscriptionID)

	u.DowngradeToFree()
	u.DowngradeToFree()
	assert.Equal(t, plan.TierFree, u.Plan())
}

func TestUser_EffectivePlan(t *testing.T) {
	admin, err := NewUser("root", "hash", authorization.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, plan.TierFree, admin.Plan())
	assert.Equal(t, plan.TierPremium, admin.EffectivePlan())
}

func TestUser_UpdateEmitterSettings(t *testing.T) {
	u, err := NewUser("carol", "hash", authorization.RoleUser)
	require.NoError(t, err)

	err = u.UpdateEmitterSettings(EmitterSettings{BusinessName: "Carol SARL", VATApplicable: true})
	assert.Error(t, err)

	err = u.UpdateEmitterSettings(EmitterSettings{BusinessName: "Carol SARL", VATApplicable: true, VATRate: 20})
	require.NoError(t, err)
	assert.Equal(t, "Carol SARL", u.EmitterSettings().BusinessName)
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrPasswordTooShort)
	assert.NoError(t, ValidatePassword("long enough"))
}
