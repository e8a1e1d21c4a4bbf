package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedEcho() *echo.Echo {
	e := echo.New()
	e.Use(NewRateLimiter().RateLimit())
	e.GET("/api/links", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/api/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func TestRateLimitExhaustsDefaultBurst(t *testing.T) {
	e := rateLimitedEcho()

	var last int
	for i := 0; i < 25; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestRateLimitLoginBucketIsStricter(t *testing.T) {
	e := rateLimitedEcho()

	var rejected bool
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.2")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			rejected = true
		}
	}
	require.True(t, rejected)

	// The same client's read traffic stays within its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.2")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitIsPerClient(t *testing.T) {
	e := rateLimitedEcho()

	for i := 0; i < 25; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.3")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.4")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
