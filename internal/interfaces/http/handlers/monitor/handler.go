// Package monitor serves the uptime monitor: monitored sites, their probe
// history and cycle triggers.
package monitor

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/monitor/usecases"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type AddSiteRequest struct {
	URL   string `json:"url" validate:"required,httpurl,max=2048"`
	Label string `json:"label" validate:"max=100"`
}

type SiteHandler struct {
	addSiteUC    addSiteUseCase
	listSitesUC  listSitesUseCase
	deleteSiteUC deleteSiteUseCase
	toggleSiteUC toggleSiteUseCase
	checkNowUC   checkSiteNowUseCase
	listChecksUC listChecksUseCase
	runCycleUC   runCycleUseCase
	logger       logger.Interface
}

func NewSiteHandler(
	addSiteUC addSiteUseCase,
	listSitesUC listSitesUseCase,
	deleteSiteUC deleteSiteUseCase,
	toggleSiteUC toggleSiteUseCase,
	checkNowUC checkSiteNowUseCase,
	listChecksUC listChecksUseCase,
	runCycleUC runCycleUseCase,
	logger logger.Interface,
) *SiteHandler {
	return &SiteHandler{
		addSiteUC:    addSiteUC,
		listSitesUC:  listSitesUC,
		deleteSiteUC: deleteSiteUC,
		toggleSiteUC: toggleSiteUC,
		checkNowUC:   checkNowUC,
		listChecksUC: listChecksUC,
		runCycleUC:   runCycleUC,
		logger:       logger,
	}
}

// AddSite handles POST /api/sites
func (h *SiteHandler) AddSite(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	var req AddSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add site", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addSiteUC.Execute(c.Request.Context(), usecases.AddSiteCommand{
		UserID: actor.UserID,
		URL:    req.URL,
		Label:  req.Label,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Site added")
}

// ListSites handles GET /api/sites. Admins may pass ?all=true.
func (h *SiteHandler) ListSites(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	result, err := h.listSitesUC.Execute(c.Request.Context(), usecases.ListSitesQuery{
		Actor:     actor,
		AllOwners: c.Query("all") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteSite handles DELETE /api/sites/:id
func (h *SiteHandler) DeleteSite(c *gin.Context) {
	cmd, ok := h.siteCommand(c)
	if !ok {
		return
	}

	if err := h.deleteSiteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ToggleSite handles PATCH /api/sites/:id/toggle
func (h *SiteHandler) ToggleSite(c *gin.Context) {
	cmd, ok := h.siteCommand(c)
	if !ok {
		return
	}

	result, err := h.toggleSiteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckNow handles POST /api/sites/:id/check
func (h *SiteHandler) CheckNow(c *gin.Context) {
	cmd, ok := h.siteCommand(c)
	if !ok {
		return
	}

	result, err := h.checkNowUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListChecks handles GET /api/sites/:id/checks?limit=N
func (h *SiteHandler) ListChecks(c *gin.Context) {
	cmd, ok := h.siteCommand(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	result, err := h.listChecksUC.Execute(c.Request.Context(), usecases.ListChecksQuery{
		SiteID: cmd.SiteID,
		Actor:  cmd.Actor,
		Limit:  limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RunCycle handles POST /api/sites/check-all. Regular users probe their own
// active sites; admins probe everything.
func (h *SiteHandler) RunCycle(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	scope := monitor.ForUser(actor.UserID)
	if actor.IsAdmin() {
		scope = monitor.All()
	}

	runCycle(c, h.runCycleUC, scope)
}

func (h *SiteHandler) siteCommand(c *gin.Context) (usecases.SiteCommand, bool) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return usecases.SiteCommand{}, false
	}
	id, err := utils.ParseUintParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.SiteCommand{}, false
	}
	return usecases.SiteCommand{SiteID: id, Actor: actor}, true
}

// runCycle detaches the cycle from the request so a client disconnect does
// not abandon probes halfway.
func runCycle(c *gin.Context, uc runCycleUseCase, scope monitor.Scope) {
	report, err := uc.Execute(context.WithoutCancel(c.Request.Context()), scope)
	if err != nil {
		if errors.Is(err, monitor.ErrCycleInProgress) {
			utils.ErrorResponseWithError(c, apperrors.NewConflictError(err.Error()))
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", report)
}

// CronHandler exposes the periodic trigger to external schedulers.
type CronHandler struct {
	runCycleUC runCycleUseCase
}

func NewCronHandler(runCycleUC runCycleUseCase) *CronHandler {
	return &CronHandler{runCycleUC: runCycleUC}
}

// RunUptime handles GET /api/cron/uptime
func (h *CronHandler) RunUptime(c *gin.Context) {
	runCycle(c, h.runCycleUC, monitor.All())
}
