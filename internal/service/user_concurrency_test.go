package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/deppfellow/naga/internal/lib/password"
	"github.com/deppfellow/naga/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

func TestRegisterWithMemoryStore(t *testing.T) {
	store := repository.NewMemoryUserRepository()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	svc := NewUserService(store, hasher)
	ctx := context.Background()

	created, err := svc.Register(ctx, "user@example.com", "abcd123!")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(created.PasswordHash, "abcd123!"))

	_, err = svc.Register(ctx, "USER@example.com", "abcd123!")
	assert.Equal(t, errs.EmailAlreadyExists, errs.KindOf(err))
	assert.Equal(t, 1, store.Count())
}

func TestRegisterExamples(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository(), password.NewBcryptHasher(bcrypt.MinCost))
	ctx := context.Background()

	_, err := svc.Register(ctx, "test@example.com", "short1!")
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	_, err = svc.Register(ctx, "bad-email", "Password123!")
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	created, err := svc.Register(ctx, "test@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", created.Email)

	_, err = svc.Register(ctx, "test@example.com", "Password123!")
	assert.Equal(t, errs.EmailAlreadyExists, errs.KindOf(err))
}

func TestConcurrentRegistrationsCreateOneUser(t *testing.T) {
	store := repository.NewMemoryUserRepository()
	svc := NewUserService(store, password.NewBcryptHasher(bcrypt.MinCost))

	const attempts = 16
	var created, conflicts atomic.Int32

	var g errgroup.Group
	for range attempts {
		g.Go(func() error {
			_, err := svc.Register(context.Background(), "race@example.com", "abcd123!")
			switch {
			case err == nil:
				created.Add(1)
			case errs.KindOf(err) == errs.EmailAlreadyExists:
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
	assert.Equal(t, 1, store.Count())
}
