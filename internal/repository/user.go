package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/naga/internal/model/user"
	"github.com/deppfellow/naga/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmailUniqueConstraint is the unique index on lower(email).
const EmailUniqueConstraint = "users_email_key"

// UserRepository persists users in PostgreSQL.
//
// Uniqueness of email is enforced by the users_email_key index on lower(email);
// ExistsByEmail applies the same normalization so the pre-check and the
// constraint agree.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}

	return exists, nil
}

// Save inserts u, filling in an id and timestamps when they are unset, and
// returns the stored row. A duplicate email yields ErrEmailConflict.
func (r *UserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES (@id, @email, @password_hash, @created_at, @updated_at)
		RETURNING id, email, password_hash, created_at, updated_at`

	record := *u
	record.Touch(time.Now().UTC())

	rows, err := r.pool.Query(ctx, query, pgx.NamedArgs{
		"id":            record.ID,
		"email":         record.Email,
		"password_hash": record.PasswordHash,
		"created_at":    record.CreatedAt,
		"updated_at":    record.UpdatedAt,
	})
	if err != nil {
		return nil, r.saveError(err)
	}

	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[user.User])
	if err != nil {
		return nil, r.saveError(err)
	}

	return &saved, nil
}

// saveError maps a violation of the email index to ErrEmailConflict. Any other
// error, other unique violations included, is returned wrapped for
// sqlerr.HandleError.
func (r *UserRepository) saveError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := sqlerr.ConvertPgError(pgErr)
		if sqlErr.Code == sqlerr.UniqueViolation && sqlErr.ConstraintName == EmailUniqueConstraint {
			return fmt.Errorf("%w: %w", ErrEmailConflict, sqlErr)
		}
	}
	return fmt.Errorf("failed to insert user: %w", err)
}
