package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/deppfellow/naga/internal/model/user"
)

// MemoryUserRepository is an in-process user store with the same uniqueness
// semantics as UserRepository. The email check and the insert happen under
// one lock, so it is safe for concurrent use.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]user.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byEmail: make(map[string]user.User)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(email)
}

func (r *MemoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[normalizeEmail(email)]
	return ok, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(u.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, ErrEmailConflict
	}

	record := *u
	record.Touch(time.Now().UTC())
	r.byEmail[key] = record

	return &record, nil
}

// FindByEmail returns a copy of the stored user.
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Count returns the number of stored users.
func (r *MemoryUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
