package user

import (
	"unicode/utf8"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/deppfellow/naga/internal/validation"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 20
	EmailMaxLength    = 100
)

// ValidatePassword applies the password rules in order and returns the first
// violation as an *errs.Error, or nil.
func ValidatePassword(raw string) *errs.Error {
	if validation.IsBlank(raw) {
		return errs.NewWithMessage(errs.InvalidInput, "Password is required")
	}

	if n := utf8.RuneCountInString(raw); n < PasswordMinLength || n > PasswordMaxLength {
		return errs.NewWithMessage(errs.InvalidInput, "Password must be between 8 and 20 characters")
	}

	if !validation.HasPasswordCharClasses(raw) {
		return errs.New(errs.InvalidPasswordFormat)
	}

	return nil
}

// ValidateEmail checks presence, length and format of email.
func ValidateEmail(email string) *errs.Error {
	if validation.IsBlank(email) {
		return errs.NewWithMessage(errs.InvalidInput, "Email is required")
	}

	if utf8.RuneCountInString(email) > EmailMaxLength {
		return errs.NewWithMessage(errs.InvalidInput, "Email must not exceed 100 characters")
	}

	if !validation.IsEmailFormat(email) {
		return errs.NewWithMessage(errs.InvalidInput, "Email format is invalid")
	}

	return nil
}
