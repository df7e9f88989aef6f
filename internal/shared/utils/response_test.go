package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/shared/constants"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
)

func render(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(constants.ContextKeyRequestID, "req-1")
	h(c)

	var resp APIResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestErrorResponseWithError_QuotaExceeded(t *testing.T) {
	w, resp := render(t, func(c *gin.Context) {
		ErrorResponseWithError(c, apperrors.NewQuotaExceededError("links", 3, "3"))
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, "quota_exceeded", resp.Error.Type)
	assert.Equal(t, "3/3", resp.Error.Details)
	assert.Equal(t, "req-1", resp.Error.RequestID)
}

func TestErrorResponseWithError_HidesInternalErrors(t *testing.T) {
	w, resp := render(t, func(c *gin.Context) {
		ErrorResponseWithError(c, errors.New("dial tcp 10.0.0.1:3306: connection refused"))
		assert.True(t, c.IsAborted())
		assert.Len(t, c.Errors, 1)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal_error", resp.Error.Type)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestListSuccessResponse(t *testing.T) {
	_, resp := render(t, func(c *gin.Context) {
		ListSuccessResponse(c, []string{"a", "b"}, 41, 2, 20)
	})

	require.True(t, resp.Success)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var list ListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Equal(t, int64(41), list.Total)
	assert.Equal(t, 3, list.TotalPages)
}

func TestCreatedResponse_DefaultMessage(t *testing.T) {
	w, resp := render(t, func(c *gin.Context) {
		CreatedResponse(c, map[string]int{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Resource created successfully", resp.Message)
}
