package http

import (
	"context"

	accountHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/account"
	adminHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/admin"
	authHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/auth"
	billingHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/billing"
	clientHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/client"
	linkHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/link"
	monitorHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/monitor"
	qrcodeHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/qrcode"
	systemHandlers "github.com/orris-inc/toolbox/internal/interfaces/http/handlers/system"
	"github.com/orris-inc/toolbox/internal/interfaces/http/middleware"
	"github.com/orris-inc/toolbox/internal/shared/constants"
)

// allHandlers holds every HTTP handler.
type allHandlers struct {
	authHandler     *authHandlers.Handler
	siteHandler     *monitorHandlers.SiteHandler
	cronHandler     *monitorHandlers.CronHandler
	linkHandler     *linkHandlers.Handler
	redirectHandler *linkHandlers.RedirectHandler
	qrcodeHandler   *qrcodeHandlers.Handler
	clientHandler   *clientHandlers.Handler
	accountHandler  *accountHandlers.Handler
	adminHandler    *adminHandlers.Handler
	webhookHandler  *billingHandlers.WebhookHandler
	systemHandler   *systemHandlers.Handler
}

func (c *Container) initHandlers() {
	u, log := c.ucs, c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwt, log)

	c.hdlrs = &allHandlers{
		authHandler: authHandlers.NewHandler(u.setupStatusUC, u.setupAdminUC, u.loginUC,
			c.cfg.Auth.Cookie, c.svcs.jwt.TTL(), log),
		siteHandler: monitorHandlers.NewSiteHandler(u.addSiteUC, u.listSitesUC, u.deleteSiteUC,
			u.toggleSiteUC, u.checkNowUC, u.listChecksUC, u.runCycleUC, log),
		cronHandler: monitorHandlers.NewCronHandler(u.runCycleUC),
		linkHandler: linkHandlers.NewHandler(u.createLinkUC, u.listLinksUC, u.deleteLinkUC,
			u.toggleLinkUC, u.listClicksUC, log),
		redirectHandler: linkHandlers.NewRedirectHandler(u.resolveUC),
		qrcodeHandler:   qrcodeHandlers.NewHandler(u.createQRCodeUC, u.listQRCodesUC, u.deleteQRCodeUC, log),
		clientHandler: clientHandlers.NewHandler(u.createClientUC, u.updateClientUC, u.deleteClientUC,
			u.listClientsUC, log),
		accountHandler: accountHandlers.NewHandler(u.getAccountUC, u.updateEmitterUC, c.svcs.evaluator, log),
		adminHandler: adminHandlers.NewHandler(u.listUsersUC, u.createUserUC, u.deleteUserUC,
			u.changeRoleUC, u.changePlanUC, log),
		webhookHandler: billingHandlers.NewWebhookHandler(c.svcs.verifier, u.applyEventUC, log),
		systemHandler:  systemHandlers.NewHandler(constants.AppVersion, c.healthChecks(), log),
	}
}

func (c *Container) healthChecks() map[string]systemHandlers.Pinger {
	checks := map[string]systemHandlers.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}
