// Package qrcode serves saved QR code definitions.
package qrcode

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/qrcode/usecases"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type createQRCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateQRCodeCommand) (*usecases.QRCodeResponse, error)
}

type listQRCodesUseCase interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]*usecases.QRCodeResponse, error)
}

type deleteQRCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteQRCodeCommand) error
}

type CreateQRCodeRequest struct {
	Content string `json:"content" validate:"required,max=2048"`
	Label   string `json:"label" validate:"max=100"`
	Size    int    `json:"size" validate:"gte=0"`
}

type Handler struct {
	createUC createQRCodeUseCase
	listUC   listQRCodesUseCase
	deleteUC deleteQRCodeUseCase
	logger   logger.Interface
}

func NewHandler(createUC createQRCodeUseCase, listUC listQRCodesUseCase, deleteUC deleteQRCodeUseCase, logger logger.Interface) *Handler {
	return &Handler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// CreateQRCode handles POST /api/qrcodes
func (h *Handler) CreateQRCode(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}

	var req CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create qr code", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateQRCodeCommand{
		UserID:  actor.UserID,
		Content: req.Content,
		Label:   req.Label,
		Size:    req.Size,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "QR code saved")
}

// ListQRCodes handles GET /api/qrcodes
func (h *Handler) ListQRCodes(c *gin.Context) {
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

// DeleteQRCode handles DELETE /api/qrcodes/:id
func (h *Handler) DeleteQRCode(c *gin.Context) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return
	}
	id, err := utils.ParseUintParam(c, "id", "qr code")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteQRCodeCommand{QRCodeID: id, Actor: actor}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
