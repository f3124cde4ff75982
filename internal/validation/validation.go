// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and converts the first failure into an *errs.Error the
// global error handler can render.
package validation

import (
	"reflect"
	"strings"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/go-playground/validator/v10"
)

// Custom tags registered on the shared validator.
const (
	TagNotBlank      = "notblank"
	TagPasswordChars = "password_chars"
	TagEmailFormat   = "email_format"
)

// tagKinds maps tags whose failure is reported with a kind other than
// errs.InvalidInput.
var tagKinds = map[string]errs.Kind{
	TagPasswordChars: errs.InvalidPasswordFormat,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		return !IsBlank(fl.Field().String())
	})
	_ = v.RegisterValidation(TagPasswordChars, func(fl validator.FieldLevel) bool {
		return HasPasswordCharClasses(fl.Field().String())
	})
	_ = v.RegisterValidation(TagEmailFormat, func(fl validator.FieldLevel) bool {
		return IsEmailFormat(fl.Field().String())
	})

	return v
}

// Struct validates s against its `validate` tags using the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}
