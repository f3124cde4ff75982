package router

import (
	"github.com/deppfellow/naga/internal/handler"
	"github.com/deppfellow/naga/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	users := g.Group("/users")
	users.POST("", h.User.CreateUserRoute(), m.RateLimit.Signup())
}
