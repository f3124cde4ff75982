package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/deppfellow/naga/internal/middleware"
	"github.com/deppfellow/naga/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const defaultCheckTimeout = 5 * time.Second

// Checker probes one dependency. A failing critical checker makes the
// service unhealthy; a failing non-critical one is only reported.
type Checker interface {
	Name() string
	Critical() bool
	Check(ctx context.Context) error
}

type pingChecker struct {
	name     string
	critical bool
	ping     func(ctx context.Context) error
}

func (p pingChecker) Name() string                    { return p.name }
func (p pingChecker) Critical() bool                  { return p.critical }
func (p pingChecker) Check(ctx context.Context) error { return p.ping(ctx) }

// NewPingChecker builds a Checker from a ping function such as pgxpool.Pool.Ping.
func NewPingChecker(name string, critical bool, ping func(ctx context.Context) error) Checker {
	return pingChecker{name: name, critical: critical, ping: ping}
}

// NewRedisChecker pings Redis. Redis only backs the welcome email queue, so
// it is not critical.
func NewRedisChecker(client *redis.Client) Checker {
	return NewPingChecker("redis", false, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

// DefaultCheckers returns the checkers named in the health check config.
func DefaultCheckers(s *server.Server) []Checker {
	cfg := s.Config.Observability.HealthChecks
	if !cfg.Enabled {
		return nil
	}

	var checkers []Checker
	for _, name := range cfg.Checks {
		switch name {
		case "database":
			if s.DB != nil {
				checkers = append(checkers, NewPingChecker("database", true, s.DB.Pool.Ping))
			}
		case "redis":
			if s.Redis != nil {
				checkers = append(checkers, NewRedisChecker(s.Redis))
			}
		}
	}
	return checkers
}

// CheckResult is the outcome of a single checker.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthReport is the body of GET /status.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type HealthHandler struct {
	Handler
	checkers []Checker
}

func NewHealthHandler(s *server.Server, checkers ...Checker) *HealthHandler {
	return &HealthHandler{
		Handler:  NewHandler(s),
		checkers: checkers,
	}
}

// CheckHealth runs every checker concurrently, each bounded by the configured
// timeout, and answers 200 when all critical checks pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	timeout := h.server.Config.Observability.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}

	report := HealthReport{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult, len(h.checkers)),
	}

	var (
		mu      sync.Mutex
		healthy = true
		g       errgroup.Group
	)

	for _, checker := range h.checkers {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			checkStart := time.Now()
			err := checker.Check(ctx)
			elapsed := time.Since(checkStart)

			result := CheckResult{Status: "healthy", ResponseTime: elapsed.String()}
			if err != nil {
				result.Status = "unhealthy"
				result.Error = err.Error()

				logger.Error().
					Err(err).
					Str("check", checker.Name()).
					Dur("response_time", elapsed).
					Msg("health check failed")

				h.recordCheckError(checker.Name(), elapsed, err)
			}

			mu.Lock()
			defer mu.Unlock()
			report.Checks[checker.Name()] = result
			if err != nil && checker.Critical() {
				healthy = false
			}
			return nil
		})
	}
	_ = g.Wait()

	if !healthy {
		report.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, report)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, report)
}

func (h *HealthHandler) recordCheckError(check string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
