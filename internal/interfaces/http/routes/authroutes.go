package routes

import (
	"github.com/gin-gonic/gin"

	authHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/auth"
	"github.com/orris-inc/toolbox/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for setup and session routes.
type AuthRouteConfig struct {
	AuthHandler    *authHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimit     gin.HandlerFunc
}

// SetupAuthRoutes configures first-run setup and login routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	setup := api.Group("/setup")
	{
		setup.GET("", cfg.AuthHandler.SetupStatus)
		setup.POST("", cfg.LoginLimit, cfg.AuthHandler.Setup)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", cfg.LoginLimit, cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}
}
