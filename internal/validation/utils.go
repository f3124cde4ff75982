package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/deppfellow/naga/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,max=100"`)
//   - Implement Validate() error that calls validation.Struct(req)
//   - Return validator.ValidationErrors, or an *errs.Error for rules tags cannot express
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the incoming body.
//  2. payload.Validate() applies validation rules.
//  3. The first failing field is returned as an *errs.Error.
//
// Fields are checked in declaration order, so request structs declare the
// field whose rule should win first.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewWithMessage(errs.InvalidInput, "Request body is malformed")
	}

	if err := payload.Validate(); err != nil {
		return ToError(err)
	}

	return nil
}

// ToError converts the result of a Validate call into an *errs.Error.
func ToError(err error) *errs.Error {
	if err == nil {
		return nil
	}

	if domainErr, ok := errs.As(err); ok {
		return domainErr
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errs.NewWithMessage(errs.InvalidInput, "Validation failed")
	}

	fe := validationErrors[0]
	kind, ok := tagKinds[fe.Tag()]
	if !ok {
		kind = errs.InvalidInput
	}

	if kind != errs.InvalidInput {
		return errs.New(kind)
	}
	return errs.NewWithMessage(kind, fmt.Sprintf("%s %s", fe.Field(), describe(fe)))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", TagNotBlank:
		return "is required"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email", TagEmailFormat:
		return "must be a valid email address"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
