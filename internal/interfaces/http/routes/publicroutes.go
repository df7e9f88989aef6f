package routes

import (
	"github.com/gin-gonic/gin"

	billingHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/billing"
	linkHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/link"
	monitorHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/monitor"
)

// MachineRouteConfig holds dependencies for routes called by other systems.
type MachineRouteConfig struct {
	WebhookHandler *billingHandlers.WebhookHandler
	CronHandler    *monitorHandlers.CronHandler
	CronAuth       gin.HandlerFunc
}

// SetupMachineRoutes configures payment webhooks and the external cron trigger.
func SetupMachineRoutes(api *gin.RouterGroup, cfg *MachineRouteConfig) {
	api.POST("/webhooks/stripe", cfg.WebhookHandler.Stripe)

	cron := api.Group("/cron")
	cron.Use(cfg.CronAuth)
	{
		cron.GET("/uptime", cfg.CronHandler.RunUptime)
		cron.POST("/uptime", cfg.CronHandler.RunUptime)
	}
}

// RedirectRouteConfig holds dependencies for the short link redirect.
type RedirectRouteConfig struct {
	RedirectHandler *linkHandlers.RedirectHandler
	RedirectLimit   gin.HandlerFunc
}

// SetupRedirectRoutes registers the catch-all short code route. It must be
// registered after every other root-level static route.
func SetupRedirectRoutes(engine *gin.Engine, cfg *RedirectRouteConfig) {
	engine.GET("/:shortCode", cfg.RedirectLimit, cfg.RedirectHandler.Redirect)
}
