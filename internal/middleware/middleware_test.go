package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopora/internal/auth"
	"shopora/internal/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestAuthJWT(t *testing.T) {
	secret := []byte("test-secret")

	e := echo.New()
	handler := AuthJWT(secret)(func(c echo.Context) error {
		userID, ok := utils.GetUserIDFromContext(c.Request().Context())
		require.True(t, ok)
		return c.String(http.StatusOK, userID)
	})

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.IssueToken(secret, "u1", "buyer@example.com", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		rec := httptest.NewRecorder()

		err = handler(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("GeneratesIDWhenMissing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("PreservesExistingID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	// Tight limit so the test trips it deterministically.
	handler := RateLimit(rate.Limit(1), 2, "test-tier")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	allowed := 0
	var lastErr error
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.1.2.3:4567"
		rec := httptest.NewRecorder()

		if err := handler(e.NewContext(req, rec)); err != nil {
			lastErr = err
		} else {
			allowed++
		}
	}

	assert.Equal(t, 2, allowed)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, lastErr, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}
