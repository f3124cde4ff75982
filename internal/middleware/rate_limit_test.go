package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/naga/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSignupRateLimit(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, &config.SecurityConfig{
		SignupRateLimit: 0.001,
		SignupBurst:     2,
	})
	e := newTestEcho(s)
	e.POST("/api/v1/users", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, NewRateLimitMiddleware(s).Signup())

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, post("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, post("10.0.0.1").Code)

	rec := post("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Error.Code)

	assert.Equal(t, http.StatusCreated, post("10.0.0.2").Code, "limits are per client")
}

func TestSignupRateLimitDisabled(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, &config.SecurityConfig{})
	e := newTestEcho(s)
	e.POST("/api/v1/users", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, NewRateLimitMiddleware(s).Signup())

	for range 10 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}
