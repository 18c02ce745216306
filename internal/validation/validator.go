// Package validation turns struct tag rules into human-readable validation issues.
//
// Fields declare their rules in the `validate` tag and the issue reported on
// failure in the `message` tag. Fields without a message fall back to a
// generic description of the failed rule.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "icebreaker/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const messageTag = "message"

// Validator validates structs. It also satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns a *domainerrors.ValidationError listing every issue found in i, or nil.
func (v *Validator) Validate(i any) error {
	issues, err := v.Issues(i)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		return domainerrors.NewValidationError(issues...)
	}

	return nil
}

// Issues returns the issue messages for i in field order. The error is non-nil only
// when i cannot be validated at all, e.g. it is not a struct.
func (v *Validator) Issues(i any) ([]string, error) {
	err := v.validate.Struct(i)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, errors.Wrap(err, "validate struct")
	}

	typ := reflect.TypeOf(i)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	issues := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, issueFor(typ, fe))
	}

	return issues, nil
}

func issueFor(typ reflect.Type, fe validator.FieldError) string {
	if typ.Kind() == reflect.Struct {
		if field, ok := typ.FieldByName(fe.StructField()); ok {
			if msg := field.Tag.Get(messageTag); msg != "" {
				return msg
			}
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
