package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e, err := NewEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	tests := []struct {
		role     authorization.UserRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleAdmin, ResourceUsers, ActionManage, true},
		{authorization.RoleAdmin, ResourceUsers, "delete", true},
		{authorization.RoleUser, ResourceUsers, ActionManage, false},
		{authorization.UserRole("guest"), ResourceUsers, ActionManage, false},
	}
	for _, tt := range tests {
		got, err := e.Enforce(tt.role, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.role, tt.resource, tt.action)
	}
}

func TestEnforcer_InheritedGrant(t *testing.T) {
	e, err := NewEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, e.Grant(Policy{Role: authorization.RoleUser, Resource: "reports", Action: "read"}))

	allowed, err := e.Enforce(authorization.RoleUser, "reports", "read")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.Enforce(authorization.RoleAdmin, "reports", "read")
	require.NoError(t, err)
	assert.True(t, allowed, "admins inherit user grants")
}
