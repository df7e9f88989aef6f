package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/admin"
	"github.com/orris-inc/toolbox/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for user administration routes.
type AdminRouteConfig struct {
	AdminHandler   *adminHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	ManageUsers    gin.HandlerFunc
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	users := api.Group("/admin/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), cfg.ManageUsers)
	{
		users.GET("", cfg.AdminHandler.ListUsers)
		users.POST("", cfg.AdminHandler.CreateUser)
		users.DELETE("/:id", cfg.AdminHandler.DeleteUser)
		users.PATCH("/:id/role", cfg.AdminHandler.ChangeRole)
		users.PATCH("/:id/plan", cfg.AdminHandler.ChangePlan)
	}
}
