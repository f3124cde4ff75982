package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind     Kind
		code     string
		status   int
		severity zerolog.Level
	}{
		{InternalError, "INTERNAL_ERROR", http.StatusInternalServerError, zerolog.ErrorLevel},
		{InvalidInput, "INVALID_INPUT", http.StatusBadRequest, zerolog.WarnLevel},
		{InvalidPasswordFormat, "INVALID_PASSWORD_FORMAT", http.StatusBadRequest, zerolog.WarnLevel},
		{EmailAlreadyExists, "EMAIL_ALREADY_EXISTS", http.StatusConflict, zerolog.InfoLevel},
		{TooManyRequests, "TOO_MANY_REQUESTS", http.StatusTooManyRequests, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.Code())
			assert.Equal(t, tt.status, tt.kind.Status())
			assert.Equal(t, tt.severity, tt.kind.Severity())
			assert.NotEmpty(t, tt.kind.Message())

			found, ok := KindByCode(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.kind, found)
		})
	}
}

func TestKindsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds() {
		assert.False(t, seen[k.Code()], "duplicate code %s", k.Code())
		seen[k.Code()] = true
	}

	_, ok := KindByCode("NOPE")
	assert.False(t, ok)
}

func TestUnknownKindFallsBackToInternal(t *testing.T) {
	k := Kind(250)
	assert.Equal(t, "INTERNAL_ERROR", k.Code())
	assert.Equal(t, http.StatusInternalServerError, k.Status())
}

func TestNew(t *testing.T) {
	err := New(EmailAlreadyExists)

	assert.Equal(t, EmailAlreadyExists, err.Kind())
	assert.Equal(t, EmailAlreadyExists.Message(), err.Message())
	assert.Equal(t, err.Message(), err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewWithMessage(t *testing.T) {
	err := NewWithMessage(InvalidInput, "Email format is invalid")
	assert.Equal(t, "Email format is invalid", err.Message())

	blank := NewWithMessage(InvalidInput, "   ")
	assert.Equal(t, InvalidInput.Message(), blank.Message())
}

func TestWithMessageReturnsCopy(t *testing.T) {
	base := New(InvalidInput)
	custom := base.WithMessage("custom")

	assert.Equal(t, InvalidInput.Message(), base.Message())
	assert.Equal(t, "custom", custom.Message())
	assert.Equal(t, base.Kind(), custom.Kind())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(InternalError, cause)

	assert.Equal(t, InternalError.Message(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestIsMatchesOnKind(t *testing.T) {
	err := fmt.Errorf("register: %w", NewWithMessage(EmailAlreadyExists, "taken"))

	assert.ErrorIs(t, err, New(EmailAlreadyExists))
	assert.NotErrorIs(t, err, New(InvalidInput))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, InvalidPasswordFormat, KindOf(fmt.Errorf("wrapped: %w", New(InvalidPasswordFormat))))
	assert.Equal(t, InternalError, KindOf(errors.New("plain")))
	assert.Equal(t, InternalError, KindOf(nil))

	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
}
