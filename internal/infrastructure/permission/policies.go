package permission

import "github.com/orris-inc/toolbox/internal/shared/authorization"

// Resources and actions checked by the HTTP layer.
const (
	ResourceUsers = "users"

	ActionManage   = "manage"
	ActionWildcard = "*"
)

// Policy allows Role to perform Action on Resource.
type Policy struct {
	Role     authorization.UserRole
	Resource string
	Action   string
}

// DefaultPolicies are the built-in grants. Ownership checks on individual
// resources stay in the use cases.
func DefaultPolicies() []Policy {
	return []Policy{
		{Role: authorization.RoleAdmin, Resource: ResourceUsers, Action: ActionWildcard},
	}
}

// DefaultInheritance lists (member, parent) pairs: admins hold every user grant.
func DefaultInheritance() [][2]authorization.UserRole {
	return [][2]authorization.UserRole{
		{authorization.RoleAdmin, authorization.RoleUser},
	}
}
