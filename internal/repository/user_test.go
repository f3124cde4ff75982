package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/deppfellow/naga/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSaveErrorMapsOnlyEmailIndex(t *testing.T) {
	repo := &UserRepository{}

	tests := []struct {
		name     string
		err      error
		conflict bool
		kind     errs.Kind
	}{
		{
			name:     "email index",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: EmailUniqueConstraint, TableName: "users"},
			conflict: true,
		},
		{
			name: "primary key",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey", TableName: "users", ColumnName: "id"},
			kind: errs.ResourceAlreadyExists,
		},
		{
			name: "not null",
			err:  &pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "email"},
			kind: errs.DatabaseConstraintViolation,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("wrapped: %w", errors.New("conn reset")),
			kind: errs.InternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.saveError(tt.err)

			assert.Equal(t, tt.conflict, errors.Is(got, ErrEmailConflict))
			if !tt.conflict {
				assert.Equal(t, tt.kind, sqlerr.HandleError(got).Kind())
			}
		})
	}
}
