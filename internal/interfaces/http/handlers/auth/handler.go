// Package auth serves first-run setup, login and logout.
package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/application/user/usecases"
	"github.com/orris-inc/toolbox/internal/shared/config"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type Handler struct {
	setupStatusUC setupStatusUseCase
	setupAdminUC  setupAdminUseCase
	loginUC       loginUseCase
	cookie        config.CookieConfig
	sessionTTL    time.Duration
	logger        logger.Interface
}

func NewHandler(
	setupStatusUC setupStatusUseCase,
	setupAdminUC setupAdminUseCase,
	loginUC loginUseCase,
	cookie config.CookieConfig,
	sessionTTL time.Duration,
	logger logger.Interface,
) *Handler {
	return &Handler{
		setupStatusUC: setupStatusUC,
		setupAdminUC:  setupAdminUC,
		loginUC:       loginUC,
		cookie:        cookie,
		sessionTTL:    sessionTTL,
		logger:        logger,
	}
}

// SetupStatus handles GET /api/setup
func (h *Handler) SetupStatus(c *gin.Context) {
	status, err := h.setupStatusUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", status)
}

// Setup handles POST /api/setup
func (h *Handler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for setup", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setupAdminUC.Execute(c.Request.Context(), usecases.SetupAdminCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Administrator created")
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookie(c, h.cookie, result.Token, h.sessionTTL)
	utils.SuccessResponse(c, http.StatusOK, "Logged in", LoginResponse{
		User:      dto.ToUserResponse(result.User),
		Token:     result.Token,
		ExpiresIn: int64(h.sessionTTL.Seconds()),
	})
}

// Logout handles POST /api/auth/logout. Sessions are stateless; clearing the
// cookie is all there is to do.
func (h *Handler) Logout(c *gin.Context) {
	utils.ClearAuthCookie(c, h.cookie)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
