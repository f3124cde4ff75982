package handler

import (
	"bytes"
	"testing"

	"github.com/deppfellow/naga/internal/config"
	"github.com/deppfellow/naga/internal/metrics"
	"github.com/deppfellow/naga/internal/middleware"
	"github.com/deppfellow/naga/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

func newTestServer(t *testing.T, logs *bytes.Buffer) *server.Server {
	t.Helper()

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	logger := zerolog.New(logs).Level(zerolog.DebugLevel)

	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Security:      &config.SecurityConfig{BcryptCost: 4},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger:  &logger,
		Metrics: metrics.New(),
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	global := middleware.NewGlobalMiddlewares(s)
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(
		middleware.RequestID(),
		middleware.NewContextEnhancer(s).EnhanceContext(),
	)
	return e
}
