package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/deppfellow/naga/internal/metrics"
	"github.com/deppfellow/naga/internal/model/user"
	"github.com/deppfellow/naga/internal/repository"
	"github.com/deppfellow/naga/internal/sqlerr"
	"github.com/rs/zerolog"
)

// UserStore is the persistence the registration flow needs.
//
// Save must surface a violated email uniqueness constraint as an error
// wrapping repository.ErrConflict.
type UserStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, u *user.User) (*user.User, error)
}

// PasswordHasher is a one-way password hash.
type PasswordHasher interface {
	Hash(raw string) (string, error)
}

// WelcomeNotifier schedules the welcome email of a new user.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, email string) error
}

type UserService struct {
	store    UserStore
	hasher   PasswordHasher
	notifier WelcomeNotifier
	metrics  *metrics.Metrics
	now      func() time.Time
}

type UserServiceOption func(*UserService)

// WithWelcomeNotifier enqueues a welcome email after every registration.
func WithWelcomeNotifier(n WelcomeNotifier) UserServiceOption {
	return func(s *UserService) { s.notifier = n }
}

func WithMetrics(m *metrics.Metrics) UserServiceOption {
	return func(s *UserService) { s.metrics = m }
}

func WithClock(now func() time.Time) UserServiceOption {
	return func(s *UserService) { s.now = now }
}

func NewUserService(store UserStore, hasher PasswordHasher, opts ...UserServiceOption) *UserService {
	s := &UserService{
		store:  store,
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user account.
//
// Checks run in a fixed order and stop at the first failure: password
// presence, password length, password character classes, email. Only then is
// the store consulted and the password hashed. Every returned error is an
// *errs.Error.
//
// The existence check only rejects early. Two concurrent calls can both pass
// it; the store's unique constraint then rejects the second insert, which is
// reported as EmailAlreadyExists as well.
func (s *UserService) Register(ctx context.Context, email, rawPassword string) (*user.User, error) {
	logger := zerolog.Ctx(ctx)

	created, err := s.register(ctx, email, rawPassword)
	if err != nil {
		s.metrics.IncrementRegistrationFailures(err.Code())
		return nil, err
	}

	s.metrics.IncrementUsersCreated()

	if s.notifier != nil {
		if err := s.notifier.EnqueueWelcomeEmail(ctx, created.Email); err != nil {
			logger.Warn().
				Err(err).
				Str("user_id", created.ID.String()).
				Msg("failed to enqueue welcome email")
		}
	}

	logger.Info().
		Str("user_id", created.ID.String()).
		Msg("user registered")

	return created, nil
}

func (s *UserService) register(ctx context.Context, email, rawPassword string) (*user.User, *errs.Error) {
	if err := user.ValidatePassword(rawPassword); err != nil {
		return nil, err
	}

	if err := user.ValidateEmail(email); err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		return nil, errs.New(errs.EmailAlreadyExists)
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, errs.Wrap(errs.InternalError, fmt.Errorf("hash password: %w", err))
	}

	saved, err := s.store.Save(ctx, user.New(email, hash, s.now()))
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, errs.Wrap(errs.EmailAlreadyExists, err)
		}
		return nil, sqlerr.HandleError(err)
	}

	return saved, nil
}
