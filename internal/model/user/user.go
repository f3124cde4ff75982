// Package user defines the user entity, its request/response shapes and the
// input rules a registration must satisfy.
package user

import (
	"time"

	"github.com/deppfellow/naga/internal/model"
	"github.com/google/uuid"
)

// User is the persisted account record.
type User struct {
	model.Base
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// New builds an unsaved user with a fresh identity.
func New(email, passwordHash string, now time.Time) *User {
	u := &User{Email: email, PasswordHash: passwordHash}
	u.Touch(now)
	return u
}

// Response is the outbound projection of User. It never includes the hash.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse projects u for the API.
func (u *User) ToResponse() Response {
	return Response{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
