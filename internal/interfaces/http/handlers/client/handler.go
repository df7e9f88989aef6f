// Package client serves the client book.
package client

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/client/usecases"
	"github.com/orris-inc/toolbox/internal/domain/client"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type createClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateClientCommand) (*usecases.ClientResponse, error)
}

type updateClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClientCommand) (*usecases.ClientResponse, error)
}

type deleteClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteClientCommand) error
}

type listClientsUseCase interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]*usecases.ClientResponse, error)
}

type ClientRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Address string `json:"address" validate:"max=500"`
	City    string `json:"city" validate:"max=100"`
	Notes   string `json:"notes" validate:"max=10000"`
}

func (r ClientRequest) details() client.Details {
	return client.Details{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		Notes:   r.Notes,
	}
}

type Handler struct {
	createUC createClientUseCase
	updateUC updateClientUseCase
	deleteUC deleteClientUseCase
	listUC   listClientsUseCase
	logger   logger.Interface
}

func NewHandler(
	createUC createClientUseCase,
	updateUC updateClientUseCase,
	deleteUC deleteClientUseCase,
	listUC listClientsUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// CreateClient handles POST /api/clients
func (h *Handler) CreateClient(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		UserID:  actor.UserID,
		Details: req.details(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created")
}

// UpdateClient handles PUT /api/clients/:id
func (h *Handler) UpdateClient(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}
	id, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		ClientID: id,
		Actor:    actor,
		Details:  req.details(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated", result)
}

// DeleteClient handles DELETE /api/clients/:id
func (h *Handler) DeleteClient(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}
	id, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{ClientID: id, Actor: actor}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListClients handles GET /api/clients
func (h *Handler) ListClients(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) bind(c *gin.Context) (ClientRequest, bool) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return req, false
	}
	return req, true
}
