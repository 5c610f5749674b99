// services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the controllers translate onto the wire. Ownership failures
// resolve to ErrNotFound so a non-owner cannot learn whether another tenant's
// resource exists.
var (
	ErrNotFound          = errors.New("not found")
	ErrSetupRequired     = errors.New("restaurant setup required")
	ErrLimitReached      = errors.New("product limit reached")
	ErrPlanRequired      = errors.New("feature requires elite plan")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
