package routes

import (
	"github.com/gin-gonic/gin"

	accountHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/account"
	clientHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/client"
	linkHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/link"
	monitorHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/monitor"
	qrcodeHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/qrcode"
	"github.com/orris-inc/toolbox/internal/interfaces/http/middleware"
)

// ResourceRouteConfig holds dependencies for the routes of signed-in users.
type ResourceRouteConfig struct {
	SiteHandler    *monitorHandlers.SiteHandler
	LinkHandler    *linkHandlers.Handler
	QRCodeHandler  *qrcodeHandlers.Handler
	ClientHandler  *clientHandlers.Handler
	AccountHandler *accountHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupResourceRoutes configures every quota-metered resource plus the account.
func SetupResourceRoutes(api *gin.RouterGroup, cfg *ResourceRouteConfig) {
	authed := api.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())

	sites := authed.Group("/sites")
	{
		sites.POST("", cfg.SiteHandler.AddSite)
		sites.GET("", cfg.SiteHandler.ListSites)
		// Named endpoints come before /:id
		sites.POST("/check-all", cfg.SiteHandler.RunCycle)
		sites.DELETE("/:id", cfg.SiteHandler.DeleteSite)
		sites.PATCH("/:id/toggle", cfg.SiteHandler.ToggleSite)
		sites.POST("/:id/check", cfg.SiteHandler.CheckNow)
		sites.GET("/:id/checks", cfg.SiteHandler.ListChecks)
	}

	links := authed.Group("/links")
	{
		links.POST("", cfg.LinkHandler.CreateLink)
		links.GET("", cfg.LinkHandler.ListLinks)
		links.DELETE("/:id", cfg.LinkHandler.DeleteLink)
		links.PATCH("/:id/toggle", cfg.LinkHandler.ToggleLink)
		links.GET("/:id/clicks", cfg.LinkHandler.ListClicks)
	}

	qrcodes := authed.Group("/qrcodes")
	{
		qrcodes.POST("", cfg.QRCodeHandler.CreateQRCode)
		qrcodes.GET("", cfg.QRCodeHandler.ListQRCodes)
		qrcodes.DELETE("/:id", cfg.QRCodeHandler.DeleteQRCode)
	}

	clients := authed.Group("/clients")
	{
		clients.POST("", cfg.ClientHandler.CreateClient)
		clients.GET("", cfg.ClientHandler.ListClients)
		clients.PUT("/:id", cfg.ClientHandler.UpdateClient)
		clients.DELETE("/:id", cfg.ClientHandler.DeleteClient)
	}

	account := authed.Group("/account")
	{
		account.GET("", cfg.AccountHandler.GetAccount)
		account.PUT("/emitter", cfg.AccountHandler.UpdateEmitter)
	}

	quota := authed.Group("/quota")
	{
		quota.GET("/usage", cfg.AccountHandler.QuotaUsage)
		quota.GET("/:kind", cfg.AccountHandler.QuotaCheck)
	}
}
