// Package admin serves user administration. Every route sits behind the admin
// role gate.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/application/user/dto"
	"github.com/orris-inc/toolbox/internal/application/user/usecases"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

type listUsersUseCase interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type createUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserResponse, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteUserCommand) error
}

type changeRoleUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeRoleCommand) (*dto.UserResponse, error)
}

type changePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePlanCommand) (*dto.UserResponse, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

type ChangePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free premium"`
}

type Handler struct {
	listUC       listUsersUseCase
	createUC     createUserUseCase
	deleteUC     deleteUserUseCase
	changeRoleUC changeRoleUseCase
	changePlanUC changePlanUseCase
	logger       logger.Interface
}

func NewHandler(
	listUC listUsersUseCase,
	createUC createUserUseCase,
	deleteUC deleteUserUseCase,
	changeRoleUC changeRoleUseCase,
	changePlanUC changePlanUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:       listUC,
		createUC:     createUC,
		deleteUC:     deleteUC,
		changeRoleUC: changeRoleUC,
		changePlanUC: changePlanUC,
		logger:       logger,
	}
}

// ListUsers handles GET /api/admin/users?page=&page_size=&username=&role=&plan=
func (h *Handler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Username: c.Query("username"),
		Role:     c.Query("role"),
		Plan:     c.Query("plan"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

// CreateUser handles POST /api/admin/users
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bind(c, h.logger, &req) {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username: req.Username,
		Password: req.Password,
		Role:     authorization.UserRole(req.Role),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created")
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	actor, id, ok := target(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: id, Actor: actor}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangeRole handles PATCH /api/admin/users/:id/role
func (h *Handler) ChangeRole(c *gin.Context) {
	actor, id, ok := target(c)
	if !ok {
		return
	}
	var req ChangeRoleRequest
	if !bind(c, h.logger, &req) {
		return
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		UserID: id,
		Role:   authorization.UserRole(req.Role),
		Actor:  actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", result)
}

// ChangePlan handles PATCH /api/admin/users/:id/plan
func (h *Handler) ChangePlan(c *gin.Context) {
	_, id, ok := target(c)
	if !ok {
		return
	}
	var req ChangePlanRequest
	if !bind(c, h.logger, &req) {
		return
	}
	tier, err := plan.ParseTierStrict(req.Plan)
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.changePlanUC.Execute(c.Request.Context(), usecases.ChangePlanCommand{UserID: id, Plan: tier})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated", result)
}

func target(c *gin.Context) (authorization.Actor, uint, bool) {
	actor, ok := utils.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "authentication required")
		return actor, 0, false
	}
	id, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return actor, 0, false
	}
	return actor, id, true
}

func bind(c *gin.Context, log logger.Interface, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid admin request body", "path", c.FullPath(), "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
