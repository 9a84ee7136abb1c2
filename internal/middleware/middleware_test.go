package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mealdash-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("ValidToken", func(t *testing.T) {
		token, err := user.GenerateAccessToken(7, "aidos", "client")
		require.NoError(t, err)

		r := newTestRouter(Auth())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("MissingHeaderPassesThroughAnonymously", func(t *testing.T) {
		r := newTestRouter(Auth())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":0`)
	})

	t.Run("GarbageTokenPassesThroughAnonymously", func(t *testing.T) {
		r := newTestRouter(Auth())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":0`)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("RejectsAnonymous", func(t *testing.T) {
		r := newTestRouter(Auth(), RequireAuth())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AllowsAuthenticated", func(t *testing.T) {
		token, err := user.GenerateAccessToken(7, "aidos", "client")
		require.NoError(t, err)

		r := newTestRouter(Auth(), RequireAuth())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	run := func(role string, required ...string) int {
		token, err := user.GenerateAccessToken(7, "aidos", role)
		require.NoError(t, err)

		r := newTestRouter(Auth(), RequireAuth(), RequireRole(required...))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run("admin", "admin"))
	assert.Equal(t, http.StatusOK, run("courier", "admin", "courier"))
	assert.Equal(t, http.StatusForbidden, run("client", "admin"))
}

func TestRequestID(t *testing.T) {
	t.Run("GeneratesWhenAbsent", func(t *testing.T) {
		r := newTestRouter(RequestID())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("HonorsCallerSupplied", func(t *testing.T) {
		r := newTestRouter(RequestID())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(RateLimit())

	var lastCode int
	for i := 0; i < burstGeneral+5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
