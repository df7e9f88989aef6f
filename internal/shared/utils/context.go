package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/constants"
)

// ActorFromContext returns the caller set by the auth middleware.
func ActorFromContext(c *gin.Context) (authorization.Actor, bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return authorization.Actor{}, false
	}
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return authorization.Actor{}, false
	}

	role := authorization.RoleUser
	if v, exists := c.Get(constants.ContextKeyUserRole); exists {
		switch r := v.(type) {
		case authorization.UserRole:
			role = authorization.ParseUserRole(string(r))
		case string:
			role = authorization.ParseUserRole(r)
		}
	}

	return authorization.Actor{UserID: userID, Role: role}, true
}

// SetActor stores the caller the way the auth middleware does.
func SetActor(c *gin.Context, actor authorization.Actor) {
	c.Set(constants.ContextKeyUserID, actor.UserID)
	c.Set(constants.ContextKeyUserRole, actor.Role)
}
