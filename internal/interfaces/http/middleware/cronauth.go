package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/shared/constants"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

// RequireCronSecret checks "Authorization: Bearer <secret>". An empty secret
// leaves the endpoint open.
func RequireCronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		got, ok := strings.CutPrefix(c.GetHeader(constants.HeaderAuthorization), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			utils.UnauthorizedResponse(c, "invalid cron secret")
			return
		}

		c.Next()
	}
}
