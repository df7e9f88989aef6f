package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/constants"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

// PermissionChecker answers role-based access questions.
type PermissionChecker interface {
	Enforce(role authorization.UserRole, resource, action string) (bool, error)
}

// RequirePermission must run after RequireAuth. A checker failure denies.
func RequirePermission(checker PermissionChecker, resource, action string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := utils.ActorFromContext(c)
		if !ok {
			utils.UnauthorizedResponse(c, "authentication required")
			return
		}

		allowed, err := checker.Enforce(actor.Role, resource, action)
		if err != nil {
			log.Errorw("permission check unavailable", "user_id", actor.UserID, "resource", resource, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if !allowed {
			log.Warnw("permission denied", "user_id", actor.UserID, "role", actor.Role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
