// Package errs defines the error taxonomy of the API and the domain error
// value carried from the service layer to the HTTP boundary.
//
// Handlers never build status codes by hand: they return an *Error and the
// global error handler turns its Kind into a status, a JSON envelope and a
// log line at the kind's severity.
package errs

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error is a typed failure: exactly one Kind plus a human-readable message.
//
// It is immutable once constructed. The optional cause is kept for server-side
// diagnostics and is never sent to clients.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New returns an error of the given kind carrying the kind's default message.
func New(kind Kind) *Error {
	return &Error{kind: kind, message: kind.Message()}
}

// NewWithMessage returns an error of the given kind with an overriding message.
// A blank message falls back to the kind's default.
func NewWithMessage(kind Kind, message string) *Error {
	if strings.TrimSpace(message) == "" {
		message = kind.Message()
	}
	return &Error{kind: kind, message: message}
}

// Wrap returns an error of the given kind that keeps cause for logging.
// The cause is annotated with a stack trace at the call site.
func Wrap(kind Kind, cause error) *Error {
	if cause != nil {
		cause = pkgerrors.WithStack(cause)
	}
	return &Error{kind: kind, message: kind.Message(), cause: cause}
}

// Error returns the message, so printing the error shows what the client sees.
func (e *Error) Error() string {
	return e.message
}

// Kind returns the taxonomy entry of the error.
func (e *Error) Kind() Kind { return e.kind }

// Code is shorthand for e.Kind().Code().
func (e *Error) Code() string { return e.kind.Code() }

// Status is shorthand for e.Kind().Status().
func (e *Error) Status() int { return e.kind.Status() }

// Message returns the client-facing message.
func (e *Error) Message() string { return e.message }

// Unwrap exposes the internal cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error of the same kind, so
//
//	errors.Is(err, errs.New(errs.EmailAlreadyExists))
//
// matches regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

// WithMessage returns a copy of e with message replaced.
func (e *Error) WithMessage(message string) *Error {
	if strings.TrimSpace(message) == "" {
		message = e.kind.Message()
	}
	return &Error{kind: e.kind, message: message, cause: e.cause}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or InternalError.
func KindOf(err error) Kind {
	if domainErr, ok := As(err); ok {
		return domainErr.kind
	}
	return InternalError
}
