package errs

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Kind identifies one entry of the error taxonomy.
//
// Every failure the API reports maps to exactly one Kind. The kind decides the
// machine-readable code, the HTTP status, the default message and the level the
// failure is logged at.
type Kind uint8

const (
	InternalError Kind = iota
	InvalidInput
	InvalidPasswordFormat
	EmailAlreadyExists
	BadRequest
	MethodNotAllowed
	ResourceNotFound
	ResourceAlreadyExists
	TooManyRequests
	DatabaseConnectionError
	DatabaseConstraintViolation
)

type kindInfo struct {
	code     string
	status   int
	message  string
	severity zerolog.Level
}

// kinds is the static registry. It is indexed by Kind and never written after init.
var kinds = [...]kindInfo{
	InternalError: {
		code:     "INTERNAL_ERROR",
		status:   http.StatusInternalServerError,
		message:  "An internal server error occurred",
		severity: zerolog.ErrorLevel,
	},
	InvalidInput: {
		code:     "INVALID_INPUT",
		status:   http.StatusBadRequest,
		message:  "The request contains invalid input",
		severity: zerolog.WarnLevel,
	},
	InvalidPasswordFormat: {
		code:     "INVALID_PASSWORD_FORMAT",
		status:   http.StatusBadRequest,
		message:  "Password must contain at least one letter, one digit and one special character (@$!%*#?&)",
		severity: zerolog.WarnLevel,
	},
	EmailAlreadyExists: {
		code:     "EMAIL_ALREADY_EXISTS",
		status:   http.StatusConflict,
		message:  "A user with this email already exists",
		severity: zerolog.InfoLevel,
	},
	BadRequest: {
		code:     "BAD_REQUEST",
		status:   http.StatusBadRequest,
		message:  "Bad request",
		severity: zerolog.WarnLevel,
	},
	MethodNotAllowed: {
		code:     "METHOD_NOT_ALLOWED",
		status:   http.StatusMethodNotAllowed,
		message:  "HTTP method not allowed",
		severity: zerolog.WarnLevel,
	},
	ResourceNotFound: {
		code:     "RESOURCE_NOT_FOUND",
		status:   http.StatusNotFound,
		message:  "The requested resource was not found",
		severity: zerolog.InfoLevel,
	},
	ResourceAlreadyExists: {
		code:     "RESOURCE_ALREADY_EXISTS",
		status:   http.StatusConflict,
		message:  "The resource already exists",
		severity: zerolog.InfoLevel,
	},
	TooManyRequests: {
		code:     "TOO_MANY_REQUESTS",
		status:   http.StatusTooManyRequests,
		message:  "Too many requests, please retry later",
		severity: zerolog.WarnLevel,
	},
	DatabaseConnectionError: {
		code:     "DATABASE_CONNECTION_ERROR",
		status:   http.StatusInternalServerError,
		message:  "A database connection error occurred",
		severity: zerolog.ErrorLevel,
	},
	DatabaseConstraintViolation: {
		code:     "DATABASE_CONSTRAINT_VIOLATION",
		status:   http.StatusBadRequest,
		message:  "A database constraint was violated",
		severity: zerolog.WarnLevel,
	},
}

var byCode = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k := range kinds {
		m[kinds[k].code] = Kind(k)
	}
	return m
}()

func (k Kind) info() kindInfo {
	if int(k) >= len(kinds) {
		return kinds[InternalError]
	}
	return kinds[k]
}

// Code returns the machine-readable code, e.g. "EMAIL_ALREADY_EXISTS".
func (k Kind) Code() string { return k.info().code }

// Status returns the HTTP status associated with the kind.
func (k Kind) Status() int { return k.info().status }

// Message returns the default human-readable message.
func (k Kind) Message() string { return k.info().message }

// Severity returns the level failures of this kind are logged at.
// Only zerolog.ErrorLevel failures are logged with a stack trace.
func (k Kind) Severity() zerolog.Level { return k.info().severity }

func (k Kind) String() string { return k.Code() }

// KindByCode looks a kind up by its code.
func KindByCode(code string) (Kind, bool) {
	k, ok := byCode[code]
	return k, ok
}

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}
