package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/naga/internal/model/user"
	"github.com/deppfellow/naga/internal/server"
	"github.com/labstack/echo/v4"
)

// UserRegistrar creates user accounts.
type UserRegistrar interface {
	Register(ctx context.Context, email, rawPassword string) (*user.User, error)
}

type UserHandler struct {
	Handler
	users UserRegistrar
}

func NewUserHandler(s *server.Server, users UserRegistrar) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUser registers an account from an email and a password. The password
// hash never leaves the service.
func (h *UserHandler) CreateUser(c echo.Context, req *user.CreateUserRequest) (user.Response, error) {
	created, err := h.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return user.Response{}, err
	}
	return created.ToResponse(), nil
}

// CreateUserRoute is POST /api/v1/users, answering 201 with the created user.
func (h *UserHandler) CreateUserRoute() echo.HandlerFunc {
	return Handle(h.Handler, h.CreateUser, http.StatusCreated, &user.CreateUserRequest{})
}
