package user

import "github.com/deppfellow/naga/internal/validation"

// CreateUserRequest is the body of POST /api/v1/users.
//
// Password is declared first so its rules are reported before the email's,
// matching the order Register checks them in.
type CreateUserRequest struct {
	Password string `json:"password" validate:"required,notblank,min=8,max=20,password_chars"`
	Email    string `json:"email" validate:"required,notblank,max=100,email_format"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}
