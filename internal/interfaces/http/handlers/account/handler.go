// Package account serves the caller's own profile and quota view.
package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/quota"
	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/application/user/usecases"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/user"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type getAccountUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.AccountResponse, error)
}

type updateEmitterUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateEmitterCommand) (*user.EmitterSettings, error)
}

// QuotaReader is the read side of the quota evaluator.
type QuotaReader interface {
	Evaluate(ctx context.Context, userID uint, kind plan.ResourceKind) (*quota.Decision, error)
	Usage(ctx context.Context, userID uint) (*quota.UsageSummary, error)
}

// QuotaCheckResponse answers "may I create one more?"
type QuotaCheckResponse struct {
	Kind      plan.ResourceKind `json:"kind"`
	Allowed   bool              `json:"allowed"`
	Current   int64             `json:"current"`
	Limit     plan.Limit        `json:"limit"`
	Remaining *int64            `json:"remaining"`
}

type Handler struct {
	getUC     getAccountUseCase
	emitterUC updateEmitterUseCase
	quota     QuotaReader
	logger    logger.Interface
}

func NewHandler(getUC getAccountUseCase, emitterUC updateEmitterUseCase, quota QuotaReader, logger logger.Interface) *Handler {
	return &Handler{getUC: getUC, emitterUC: emitterUC, quota: quota, logger: logger}
}

// GetAccount handles GET /api/account
func (h *Handler) GetAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateEmitter handles PUT /api/account/emitter
func (h *Handler) UpdateEmitter(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req user.EmitterSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid emitter settings body", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.emitterUC.Execute(c.Request.Context(), usecases.UpdateEmitterCommand{UserID: userID, Settings: req})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Emitter settings updated", result)
}

// QuotaUsage handles GET /api/quota/usage
func (h *Handler) QuotaUsage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.quota.Usage(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			err = apperrors.NewNotFoundError("user not found")
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// QuotaCheck handles GET /api/quota/:kind
func (h *Handler) QuotaCheck(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	kind, err := plan.ParseResourceKind(c.Param("kind"))
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	decision, err := h.quota.Evaluate(c.Request.Context(), userID, kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := QuotaCheckResponse{
		Kind:    kind,
		Allowed: decision.Allowed,
		Current: decision.Current,
		Limit:   decision.Limit,
	}
	if n, bounded := decision.Remaining(); bounded {
		resp.Remaining = &n
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func currentUser(c *gin.Context) (uint, bool) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return 0, false
	}
	return actor.UserID, true
}
