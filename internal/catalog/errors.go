package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means a referenced property does not exist.
	ErrNotFound = errors.New("property not found")
	// ErrInternal wraps store failures the caller cannot act on.
	ErrInternal = errors.New("internal error")
)

// FieldError names one offending input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field that failed shape, range or format
// checks. It is always returned before the store is touched.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}
