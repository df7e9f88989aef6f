package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/infrastructure/permission"
	"github.com/orris-inc/toolbox/internal/interfaces/http/middleware"
	"github.com/orris-inc/toolbox/internal/interfaces/http/routes"
	"github.com/orris-inc/toolbox/internal/shared/constants"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	e := c.engine
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(c.log.Component("http"), "/health", "/metrics"))
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())
	e.Use(c.metrics.Middleware())

	e.GET("/health", c.hdlrs.systemHandler.Health)
	e.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	e.GET(constants.PathLinkDisabled, linkDisabled)

	api := e.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		LoginLimit:     c.rateLimit("login", c.cfg.RateLimit.LoginPerMinute),
	})

	routes.SetupResourceRoutes(api, &routes.ResourceRouteConfig{
		SiteHandler:    c.hdlrs.siteHandler,
		LinkHandler:    c.hdlrs.linkHandler,
		QRCodeHandler:  c.hdlrs.qrcodeHandler,
		ClientHandler:  c.hdlrs.clientHandler,
		AccountHandler: c.hdlrs.accountHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:   c.hdlrs.adminHandler,
		AuthMiddleware: c.authMiddleware,
		ManageUsers: middleware.RequirePermission(c.svcs.permissions,
			permission.ResourceUsers, permission.ActionManage, c.log),
	})

	routes.SetupMachineRoutes(api, &routes.MachineRouteConfig{
		WebhookHandler: c.hdlrs.webhookHandler,
		CronHandler:    c.hdlrs.cronHandler,
		CronAuth:       middleware.RequireCronSecret(c.cfg.Cron.Secret),
	})

	if c.cfg.Cron.Secret == "" {
		c.log.Warnw("cron secret not configured, /api/cron/uptime is open")
	}

	// Must stay last: it shares the root segment with the static routes above.
	routes.SetupRedirectRoutes(e, &routes.RedirectRouteConfig{
		RedirectHandler: c.hdlrs.redirectHandler,
		RedirectLimit:   c.rateLimit("redirect", c.cfg.RateLimit.RedirectPerMinute),
	})
}

func (c *Container) rateLimit(bucket string, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return middleware.RateLimit(c.svcs.rateLimiter, bucket, perMinute, rateLimitWindow, c.log)
}

func linkDisabled(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.String(http.StatusGone, "This link has been disabled by its owner.")
}
