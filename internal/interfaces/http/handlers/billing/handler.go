// Package billing receives payment provider webhooks.
package billing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/billing/usecases"
	"github.com/orris-inc/toolbox/internal/shared/constants"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

const maxWebhookBodyBytes = 1 << 20

type WebhookVerifier interface {
	Verify(payload []byte, signature string) (*usecases.WebhookEvent, error)
}

type applyEventUseCase interface {
	Execute(ctx context.Context, evt usecases.WebhookEvent) (*usecases.ApplyResult, error)
}

type WebhookHandler struct {
	verifier WebhookVerifier
	applyUC  applyEventUseCase
	logger   logger.Interface
}

func NewWebhookHandler(verifier WebhookVerifier, applyUC applyEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, applyUC: applyUC, logger: logger}
}

// Stripe handles POST /api/webhooks/stripe. Signature problems answer 400 so
// Stripe surfaces them; apply failures answer 500 so Stripe retries.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read body")
		return
	}

	evt, err := h.verifier.Verify(payload, c.GetHeader(constants.HeaderStripeSignature))
	if err != nil {
		h.logger.Warnw("stripe webhook rejected", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	// Stripe does not wait for slow handlers; finish the apply even if it hangs up.
	result, err := h.applyUC.Execute(context.WithoutCancel(c.Request.Context()), *evt)
	if err != nil {
		h.logger.Errorw("failed to apply stripe event", "event_id", evt.ID, "type", evt.Type, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "result": result})
}
