package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/infrastructure/auth"
	"github.com/orris-inc/toolbox/internal/infrastructure/ratelimit"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/constants"
	"github.com/orris-inc/toolbox/internal/shared/logger"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := utils.ActorFromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%d:%s", actor.UserID, actor.Role)
	})
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	token, err := jwtSvc.Generate(7, authorization.RoleAdmin)
	require.NoError(t, err)

	r := newEngine(NewAuthMiddleware(jwtSvc, logger.NewNopLogger()).RequireAuth())

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: utils.AuthTokenCookie, Value: token})
		w := serve(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7:admin", w.Body.String())
	})

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := serve(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := auth.NewJWTService("other", time.Hour).Generate(7, authorization.RoleAdmin)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
	})
}

type roleChecker map[authorization.UserRole]bool

func (r roleChecker) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	if resource == "broken" {
		return false, errors.New("policy store down")
	}
	return r[role], nil
}

func TestRequirePermission(t *testing.T) {
	as := func(role authorization.UserRole) gin.HandlerFunc {
		return func(c *gin.Context) {
			utils.SetActor(c, authorization.Actor{UserID: 1, Role: role})
		}
	}
	checker := roleChecker{authorization.RoleAdmin: true}
	gate := RequirePermission(checker, "users", "manage", logger.NewNopLogger())

	w := serve(newEngine(as(authorization.RoleUser), gate), httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(newEngine(as(authorization.RoleAdmin), gate), httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(newEngine(gate), httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	broken := RequirePermission(checker, "broken", "manage", logger.NewNopLogger())
	w = serve(newEngine(as(authorization.RoleAdmin), broken), httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewMemoryRateLimiter(time.Minute)
	r := newEngine(RateLimit(limiter, "test", 2, time.Minute, logger.NewNopLogger()))

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil)).Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r := newEngine(RateLimit(failingLimiter{}, "test", 1, time.Minute, logger.NewNopLogger()))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil)).Code)
	}
}

func TestRequireCronSecret(t *testing.T) {
	r := newEngine(RequireCronSecret("s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	assert.Equal(t, http.StatusOK, serve(r, req).Code)

	open := newEngine(RequireCronSecret(""))
	assert.Equal(t, http.StatusOK, serve(open, httptest.NewRequest(http.MethodGet, "/whoami", nil)).Code)
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger_SkipsHealthyScrapes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.FromSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := newEngine(Logger(log, "/health"))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	serve(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Contains(t, buf.String(), "route=/whoami")
	assert.Contains(t, buf.String(), "status=200")
}
