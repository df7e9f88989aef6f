package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/shared/constants"
	"github.com/orris-inc/toolbox/internal/shared/errors"
)

// APIResponse is the JSON envelope of every /api response.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorInfo is the error half of the envelope. For quota denials Details
// carries "current/limit".
type ErrorInfo struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ListResponse is the data payload of paginated endpoints.
type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, APIResponse{Success: true, Data: data, Message: message})
}

// abortWith writes the error envelope and aborts the handler chain.
func abortWith(c *gin.Context, status int, info ErrorInfo) {
	info.RequestID = c.GetString(constants.ContextKeyRequestID)
	c.AbortWithStatusJSON(status, APIResponse{Success: false, Error: &info})
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	respond(c, statusCode, data, message)
}

func CreatedResponse(c *gin.Context, data any, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	respond(c, http.StatusCreated, data, msg)
}

func ListSuccessResponse(c *gin.Context, items any, total int64, page, pageSize int, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	respond(c, http.StatusOK, ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	}, msg)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse writes a generic error with an explicit status.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	abortWith(c, statusCode, ErrorInfo{Type: "error", Message: message})
}

func UnauthorizedResponse(c *gin.Context, message string) {
	abortWith(c, http.StatusUnauthorized, ErrorInfo{
		Type:    string(errors.ErrorTypeUnauthorized),
		Message: message,
	})
}

// ErrorResponseWithError renders an AppError with its own status. Any other
// error becomes an opaque 500 so internals never reach the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		_ = c.Error(err)
		abortWith(c, http.StatusInternalServerError, ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		})
		return
	}

	abortWith(c, appErr.Code, ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
