// Package link serves the link shortener and its public redirect.
package link

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/link/usecases"
	"github.com/orris-inc/toolbox/internal/shared/constants"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type CreateLinkRequest struct {
	OriginalURL string `json:"original_url" validate:"required,httpurl,max=2048"`
	Title       string `json:"title" validate:"max=200"`
}

type Handler struct {
	createUC     createLinkUseCase
	listUC       listLinksUseCase
	deleteUC     deleteLinkUseCase
	toggleUC     toggleLinkUseCase
	listClicksUC listClicksUseCase
	logger       logger.Interface
}

func NewHandler(
	createUC createLinkUseCase,
	listUC listLinksUseCase,
	deleteUC deleteLinkUseCase,
	toggleUC toggleLinkUseCase,
	listClicksUC listClicksUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:     createUC,
		listUC:       listUC,
		deleteUC:     deleteUC,
		toggleUC:     toggleUC,
		listClicksUC: listClicksUC,
		logger:       logger,
	}
}

// CreateLink handles POST /api/links
func (h *Handler) CreateLink(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create link", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateLinkCommand{
		UserID:      actor.UserID,
		OriginalURL: req.OriginalURL,
		Title:       req.Title,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Link created")
}

// ListLinks handles GET /api/links. Admins may pass ?all=true.
func (h *Handler) ListLinks(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListLinksQuery{
		Actor:     actor,
		AllOwners: c.Query("all") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteLink handles DELETE /api/links/:id
func (h *Handler) DeleteLink(c *gin.Context) {
	cmd, ok := linkCommand(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ToggleLink handles PATCH /api/links/:id/toggle
func (h *Handler) ToggleLink(c *gin.Context) {
	cmd, ok := linkCommand(c)
	if !ok {
		return
	}

	result, err := h.toggleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClicks handles GET /api/links/:id/clicks?limit=N
func (h *Handler) ListClicks(c *gin.Context) {
	cmd, ok := linkCommand(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	result, err := h.listClicksUC.Execute(c.Request.Context(), usecases.ListClicksQuery{
		LinkID: cmd.LinkID,
		Actor:  cmd.Actor,
		Limit:  limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func linkCommand(c *gin.Context) (usecases.LinkCommand, bool) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return usecases.LinkCommand{}, false
	}
	id, err := utils.ParseUintParam(c, "id", "link")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.LinkCommand{}, false
	}
	return usecases.LinkCommand{LinkID: id, Actor: actor}, true
}

type RedirectHandler struct {
	resolveUC resolveRedirectUseCase
}

func NewRedirectHandler(resolveUC resolveRedirectUseCase) *RedirectHandler {
	return &RedirectHandler{resolveUC: resolveUC}
}

// Redirect handles GET /:shortCode
func (h *RedirectHandler) Redirect(c *gin.Context) {
	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveRedirectCommand{
		ShortCode: c.Param("shortCode"),
		Referer:   c.GetHeader("Referer"),
		UserAgent: c.GetHeader(constants.HeaderUserAgent),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, result.Location)
}
