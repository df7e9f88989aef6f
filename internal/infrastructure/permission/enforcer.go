// Package permission answers role-based access questions with casbin.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// rbacModel grants a role every policy of the roles it inherits. An action of
// "*" matches any action on the resource.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && (p.act == "*" || r.act == p.act)
`

// Enforcer holds policies in memory. They are defined in code and loaded at
// startup, so nothing is persisted.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds an enforcer seeded with DefaultPolicies.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.load(DefaultPolicies(), DefaultInheritance()); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) load(policies []Policy, inheritance [][2]authorization.UserRole) error {
	rules := make([][]string, 0, len(policies))
	for _, p := range policies {
		rules = append(rules, []string{p.Role.String(), p.Resource, p.Action})
	}
	if _, err := e.enforcer.AddPolicies(rules); err != nil {
		return fmt.Errorf("failed to add policies: %w", err)
	}

	for _, pair := range inheritance {
		if _, err := e.enforcer.AddGroupingPolicy(pair[0].String(), pair[1].String()); err != nil {
			return fmt.Errorf("failed to add role inheritance %s -> %s: %w", pair[0], pair[1], err)
		}
	}
	return nil
}

// Enforce reports whether role may perform action on resource.
func (e *Enforcer) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// Grant adds one policy at runtime.
func (e *Enforcer) Grant(p Policy) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(p.Role.String(), p.Resource, p.Action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}
