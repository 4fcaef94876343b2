package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("record not found")
	ErrEmpty        = errors.New("no records found")
	ErrInvalidID    = errors.New("invalid record identifier")
	ErrValidation   = errors.New("validation failed")
	ErrUserNotFound = errors.New("user does not exist")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("access denied")
)

// ValidationError reports the first field that violates a schema constraint.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Field string // JSON name of the field
	Rule  string // required, oneof, min, type, ...
	Param string // rule argument, e.g. "1000" or "Maganjo Matugga"
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field, e.Param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field, e.Param)
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", e.Field, e.Param)
	case "type":
		return fmt.Sprintf("%s has an invalid type", e.Field)
	case "excluded":
		return fmt.Sprintf("%s is not allowed %s", e.Field, e.Param)
	default:
		if e.Param != "" {
			return fmt.Sprintf("%s failed %s=%s", e.Field, e.Rule, e.Param)
		}
		return fmt.Sprintf("%s failed %s", e.Field, e.Rule)
	}
}

// Is makes errors.Is(err, ErrValidation) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError shorthand constructor.
func NewValidationError(field, rule, param string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Param: param}
}
