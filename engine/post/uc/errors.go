package uc

import (
	"errors"
	"fmt"
)

// ErrSectionNotFound is returned when the section id is not in the registry.
var ErrSectionNotFound = errors.New("section not found")

// ValidationError reports an input field outside its allowed bounds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
