package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/naga/internal/config"
	"github.com/deppfellow/naga/internal/errs"
	"github.com/deppfellow/naga/internal/lib/password"
	"github.com/deppfellow/naga/internal/logger"
	"github.com/deppfellow/naga/internal/model/user"
	"github.com/deppfellow/naga/internal/repository"
	"github.com/deppfellow/naga/internal/service"
	"github.com/deppfellow/naga/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Result string          `json:"result"`
	Data   json.RawMessage `json:"data"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type UserHandlerSuite struct {
	suite.Suite
	logs  *bytes.Buffer
	store *repository.MemoryUserRepository
	e     *echo.Echo
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	srv := newTestServer(s.T(), s.logs)

	s.store = repository.NewMemoryUserRepository()
	users := service.NewUserService(s.store, password.NewBcryptHasher(4), service.WithMetrics(srv.Metrics))

	s.e = newTestEcho(srv)
	s.e.POST("/api/v1/users", NewUserHandler(srv, users).CreateUserRoute())
}

func (s *UserHandlerSuite) post(body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func (s *UserHandlerSuite) TestCreateUser() {
	rec, env := s.post(`{"email":"user@example.com","password":"abcd123!"}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("SUCCESS", env.Result)
	s.Nil(env.Error)

	var created user.Response
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.Equal("user@example.com", created.Email)
	s.NotEmpty(created.ID)
	s.False(created.CreatedAt.IsZero())

	s.NotContains(rec.Body.String(), "password")
	s.NotContains(rec.Body.String(), "abcd123!")
	s.Equal(1, s.store.Count())
}

func (s *UserHandlerSuite) TestCreateUserFailures() {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"short password", `{"email":"user@example.com","password":"short1!"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad email", `{"email":"bad-email","password":"abcd123!"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing fields", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"password without special", `{"email":"user@example.com","password":"Password1"}`, http.StatusBadRequest, "INVALID_PASSWORD_FORMAT"},
		{"malformed json", `{"email":`, http.StatusBadRequest, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, env := s.post(tt.body)

			s.Equal(tt.status, rec.Code)
			s.Equal("ERROR", env.Result)
			s.Nil(env.Data)
			s.Require().NotNil(env.Error)
			s.Equal(tt.code, env.Error.Code)
			s.NotEmpty(env.Error.Message)
		})
	}

	s.Equal(0, s.store.Count())
}

func (s *UserHandlerSuite) TestDuplicateEmail() {
	rec, _ := s.post(`{"email":"dup@example.com","password":"abcd123!"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec, env := s.post(`{"email":"DUP@example.com","password":"zzzz999#"}`)
	s.Equal(http.StatusConflict, rec.Code)
	s.Require().NotNil(env.Error)
	s.Equal("EMAIL_ALREADY_EXISTS", env.Error.Code)
	s.Equal(errs.EmailAlreadyExists.Message(), env.Error.Message)
	s.Equal(1, s.store.Count())
}

func (s *UserHandlerSuite) TestErrorBodyHasOnlyCodeAndMessage() {
	rec, _ := s.post(`{"email":"bad-email","password":"abcd123!"}`)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.ElementsMatch([]string{"result", "error"}, keys(body))

	detail, ok := body["error"].(map[string]any)
	s.Require().True(ok)
	s.ElementsMatch([]string{"code", "message"}, keys(detail))
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

type failingRegistrar struct{ err error }

func (f failingRegistrar) Register(context.Context, string, string) (*user.User, error) {
	return nil, f.err
}

func TestCreateUserLogsAtKindSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		stack bool
	}{
		{
			name:  "store conflict is info",
			err:   errs.Wrap(errs.EmailAlreadyExists, fmt.Errorf("%w: duplicate key", repository.ErrEmailConflict)),
			level: "INF",
		},
		{
			name:  "constraint violation is warn",
			err:   sqlerr.HandleError(&pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "users", ColumnName: "email"}),
			level: "WRN",
		},
		{
			name:  "internal is error with stack",
			err:   errs.Wrap(errs.InternalError, assert.AnError),
			level: "ERR",
			stack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := config.DefaultObservabilityConfig()
			obs.Environment = "development"
			obs.Logging.Level = "debug"

			logs := &bytes.Buffer{}
			srv := newTestServer(t, &bytes.Buffer{})
			appLogger := logger.NewLoggerWithWriter(obs, nil, logs)
			srv.Logger = &appLogger

			e := newTestEcho(srv)
			e.POST("/api/v1/users", NewUserHandler(srv, failingRegistrar{err: tt.err}).CreateUserRoute())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
				strings.NewReader(`{"email":"user@example.com","password":"abcd123!"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, errs.KindOf(tt.err).Status(), rec.Code)

			line := findConsoleLine(t, logs, "error_code=")
			assert.Contains(t, line, tt.level)
			assert.Equal(t, tt.stack, strings.Contains(line, "stack="))
		})
	}
}

func findConsoleLine(t *testing.T, logs *bytes.Buffer, field string) string {
	t.Helper()
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, field) {
			return line
		}
	}
	t.Fatalf("no log line with %q in:\n%s", field, logs.String())
	return ""
}
