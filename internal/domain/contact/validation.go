package contact

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/linq/acme-integration/internal/domain/shared"
)

// ErrValidation is the domain error every *ValidationError unwraps to.
var ErrValidation = shared.NewDomainError("VALIDATION_ERROR", "Contact validation failed")

// FieldViolation describes one failed constraint.
type FieldViolation struct {
	Field   string `json:"field"`
	Tag     string `json:"-"`
	Message string `json:"message"`
}

// ValidationError is returned when a contact representation cannot be built.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Message
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidation.Message + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes ErrValidation so callers can match on the domain code.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRecord runs struct validation on record. Field names in the
// resulting violations are translated through rename so they match the
// representation the caller supplied.
func validateRecord(record any, rename map[string]string) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return shared.WrapDomainError(ErrValidation.Code, ErrValidation.Message, err)
	}
	out := &ValidationError{Violations: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if src, ok := rename[field]; ok {
			field = src
		}
		out.Violations = append(out.Violations, FieldViolation{
			Field:   field,
			Tag:     fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
