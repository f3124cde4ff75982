package middleware

import (
	"errors"
	"net/http"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/deppfellow/naga/internal/model"
	"github.com/deppfellow/naga/internal/server"
	"github.com/deppfellow/naga/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the configured browser origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request, leveled by status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not written the response yet when a
			// handler returns an error; derive the status it will use.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = ResolveError(v.Error).Status()
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into errors for the error handler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// ResolveError maps any error reaching the HTTP boundary to a domain error.
//
//   - domain errors pass through
//   - echo 404, 405 and 429 map to their own kinds
//   - other echo 4xx map to BadRequest, echo 5xx to InternalError
//   - everything else goes through sqlerr.HandleError
func ResolveError(err error) *errs.Error {
	if domainErr, ok := errs.As(err); ok {
		return domainErr
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return sqlerr.HandleError(err)
	}

	switch {
	case echoErr.Code == http.StatusNotFound:
		return errs.Wrap(errs.ResourceNotFound, err)
	case echoErr.Code == http.StatusMethodNotAllowed:
		return errs.Wrap(errs.MethodNotAllowed, err)
	case echoErr.Code == http.StatusTooManyRequests:
		return errs.Wrap(errs.TooManyRequests, err)
	case echoErr.Code >= http.StatusInternalServerError:
		return errs.Wrap(errs.InternalError, err)
	default:
		resolved := errs.Wrap(errs.BadRequest, err)
		if msg, ok := echoErr.Message.(string); ok {
			resolved = resolved.WithMessage(msg)
		}
		return resolved
	}
}

// GlobalErrorHandler is the final error funnel of the HTTP server.
//
// It answers with the kind's status and an error envelope carrying only the
// code and message. The original error is logged at the kind's severity;
// stack traces are attached at error severity only.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	resolved := ResolveError(err)
	level := resolved.Kind().Severity()

	logger := GetLogger(c)
	event := logger.WithLevel(level)
	if level >= zerolog.ErrorLevel {
		event = event.Stack()
	}
	event.
		Err(err).
		Int("status", resolved.Status()).
		Str("error_code", resolved.Code()).
		Msg(resolved.Message())

	if c.Response().Committed {
		return
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(resolved.Status())
	} else {
		writeErr = global.writeFailure(c, logger, resolved.Status(), resolved.Code(), resolved.Message())
	}
	if writeErr != nil {
		logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}

// writeFailure writes the error envelope. An envelope rejected for a blank
// code or message is logged and answered as an internal error.
func (global *GlobalMiddlewares) writeFailure(c echo.Context, logger *zerolog.Logger, status int, code, message string) error {
	env, err := model.Failure(code, message)
	if err != nil {
		logger.Error().
			Err(err).
			Str("error_code", code).
			Msg("invalid error envelope")
		status = http.StatusInternalServerError
	}
	return c.JSON(status, env)
}
