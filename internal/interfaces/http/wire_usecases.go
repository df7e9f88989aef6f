package http

import (
	billingUsecases "github.com/orris-inc/toolbox/internal/application/billing/usecases"
	clientUsecases "github.com/orris-inc/toolbox/internal/application/client/usecases"
	linkUsecases "github.com/orris-inc/toolbox/internal/application/link/usecases"
	monitorUsecases "github.com/orris-inc/toolbox/internal/application/monitor/usecases"
	qrcodeUsecases "github.com/orris-inc/toolbox/internal/application/qrcode/usecases"
	userUsecases "github.com/orris-inc/toolbox/internal/application/user/usecases"
)

// allUseCases holds every use case the handlers call.
type allUseCases struct {
	// Users and sessions
	setupStatusUC   *userUsecases.SetupStatusUseCase
	setupAdminUC    *userUsecases.SetupAdminUseCase
	loginUC         *userUsecases.LoginUseCase
	listUsersUC     *userUsecases.ListUsersUseCase
	createUserUC    *userUsecases.CreateUserUseCase
	deleteUserUC    *userUsecases.DeleteUserUseCase
	changeRoleUC    *userUsecases.ChangeRoleUseCase
	changePlanUC    *userUsecases.ChangePlanUseCase
	getAccountUC    *userUsecases.GetAccountUseCase
	updateEmitterUC *userUsecases.UpdateEmitterUseCase

	// Uptime monitoring
	addSiteUC    *monitorUsecases.AddSiteUseCase
	listSitesUC  *monitorUsecases.ListSitesUseCase
	deleteSiteUC *monitorUsecases.DeleteSiteUseCase
	toggleSiteUC *monitorUsecases.ToggleSiteUseCase
	checkNowUC   *monitorUsecases.CheckSiteNowUseCase
	listChecksUC *monitorUsecases.ListChecksUseCase
	runCycleUC   *monitorUsecases.RunCycleUseCase

	// Links
	createLinkUC *linkUsecases.CreateLinkUseCase
	listLinksUC  *linkUsecases.ListLinksUseCase
	deleteLinkUC *linkUsecases.DeleteLinkUseCase
	toggleLinkUC *linkUsecases.ToggleLinkUseCase
	listClicksUC *linkUsecases.ListClicksUseCase
	resolveUC    *linkUsecases.ResolveRedirectUseCase

	// QR codes and clients
	createQRCodeUC *qrcodeUsecases.CreateQRCodeUseCase
	listQRCodesUC  *qrcodeUsecases.ListQRCodesUseCase
	deleteQRCodeUC *qrcodeUsecases.DeleteQRCodeUseCase
	createClientUC *clientUsecases.CreateClientUseCase
	updateClientUC *clientUsecases.UpdateClientUseCase
	deleteClientUC *clientUsecases.DeleteClientUseCase
	listClientsUC  *clientUsecases.ListClientsUseCase

	// Billing
	applyEventUC *billingUsecases.ApplyWebhookEventUseCase
}

func (c *Container) initUseCases() {
	r, s, log := c.repos, c.svcs, c.log
	baseURL := c.cfg.Server.BaseURL

	ucs := &allUseCases{
		setupStatusUC:   userUsecases.NewSetupStatusUseCase(r.userRepo),
		setupAdminUC:    userUsecases.NewSetupAdminUseCase(r.userRepo, s.hasher, log),
		loginUC:         userUsecases.NewLoginUseCase(r.userRepo, s.hasher, s.jwt, log),
		listUsersUC:     userUsecases.NewListUsersUseCase(r.userRepo, s.evaluator, log),
		createUserUC:    userUsecases.NewCreateUserUseCase(r.userRepo, s.hasher, log),
		deleteUserUC:    userUsecases.NewDeleteUserUseCase(r.userRepo, log),
		changeRoleUC:    userUsecases.NewChangeRoleUseCase(r.userRepo, log),
		changePlanUC:    userUsecases.NewChangePlanUseCase(r.userRepo, log),
		getAccountUC:    userUsecases.NewGetAccountUseCase(r.userRepo, s.evaluator),
		updateEmitterUC: userUsecases.NewUpdateEmitterUseCase(r.userRepo, log),

		addSiteUC:    monitorUsecases.NewAddSiteUseCase(r.siteRepo, s.evaluator, s.markdown, log),
		listSitesUC:  monitorUsecases.NewListSitesUseCase(r.siteRepo, r.checkRepo, log),
		deleteSiteUC: monitorUsecases.NewDeleteSiteUseCase(r.siteRepo, log),
		toggleSiteUC: monitorUsecases.NewToggleSiteUseCase(r.siteRepo, log),
		checkNowUC:   monitorUsecases.NewCheckSiteNowUseCase(r.siteRepo, r.checkRepo, s.prober, log),
		listChecksUC: monitorUsecases.NewListChecksUseCase(r.siteRepo, r.checkRepo),
		runCycleUC: monitorUsecases.NewRunCycleUseCase(r.siteRepo, r.checkRepo, s.prober, monitorUsecases.CycleConfig{
			Concurrency: c.cfg.Uptime.Concurrency,
			Retention:   c.cfg.Uptime.Retention(),
		}, log),

		createLinkUC: linkUsecases.NewCreateLinkUseCase(r.linkRepo, s.evaluator, baseURL, log),
		listLinksUC:  linkUsecases.NewListLinksUseCase(r.linkRepo, baseURL),
		deleteLinkUC: linkUsecases.NewDeleteLinkUseCase(r.linkRepo, log),
		toggleLinkUC: linkUsecases.NewToggleLinkUseCase(r.linkRepo, baseURL, log),
		listClicksUC: linkUsecases.NewListClicksUseCase(r.linkRepo),
		resolveUC:    linkUsecases.NewResolveRedirectUseCase(r.linkRepo, log),

		createQRCodeUC: qrcodeUsecases.NewCreateQRCodeUseCase(r.qrcodeRepo, s.evaluator, log),
		listQRCodesUC:  qrcodeUsecases.NewListQRCodesUseCase(r.qrcodeRepo),
		deleteQRCodeUC: qrcodeUsecases.NewDeleteQRCodeUseCase(r.qrcodeRepo, log),
		createClientUC: clientUsecases.NewCreateClientUseCase(r.clientRepo, s.evaluator, s.markdown, log),
		updateClientUC: clientUsecases.NewUpdateClientUseCase(r.clientRepo, s.markdown, log),
		deleteClientUC: clientUsecases.NewDeleteClientUseCase(r.clientRepo, log),
		listClientsUC:  clientUsecases.NewListClientsUseCase(r.clientRepo, s.markdown, log),

		applyEventUC: billingUsecases.NewApplyWebhookEventUseCase(r.userRepo, s.eventClaims, s.transactor, log),
	}

	ucs.checkNowUC.SetRecorder(c.metrics)
	ucs.runCycleUC.SetRecorder(c.metrics)

	c.ucs = ucs
}
