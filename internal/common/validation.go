package common

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Validator collects field-level validation errors so a caller can report them
// all at once instead of failing on the first.
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{errors: make([]ValidationError, 0)}
}

// Require records an error if the trimmed value is empty.
func (v *Validator) Require(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.errors = append(v.errors, ValidationError{Field: field, Message: "is required"})
	}
	return v
}

// MaxLen records an error if the value exceeds max runes after trimming.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		v.errors = append(v.errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		})
	}
	return v
}

// Min records an error if the value is below min.
func (v *Validator) Min(field string, value, min int) *Validator {
	if value < min {
		v.errors = append(v.errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d", min),
		})
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// Err returns the collected errors as a single error, or nil.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	msgs := make([]string, len(v.errors))
	for i, e := range v.errors {
		msgs[i] = e.Error()
	}
	return errors.New(strings.Join(msgs, "; "))
}
