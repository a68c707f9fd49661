package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors (caller supplied unusable parameters)
	ErrConfiguration   = errors.New("invalid configuration")
	ErrInvalidLength   = fmt.Errorf("%w: length must be positive", ErrConfiguration)
	ErrInvalidLimit    = fmt.Errorf("%w: limit must be non-negative", ErrConfiguration)
	ErrUnboundedLimit  = fmt.Errorf("%w: a finite limit is required", ErrConfiguration)
	ErrNegativeSeed    = fmt.Errorf("%w: integer seed must be non-negative", ErrConfiguration)
	ErrMissingFunction = fmt.Errorf("%w: function is required", ErrConfiguration)

	// Validation errors (supplied specification is unusable)
	ErrValidation         = errors.New("invalid specification")
	ErrSpecLengthMismatch = fmt.Errorf("%w: bit count does not match limit", ErrValidation)
	ErrMalformedBits      = fmt.Errorf("%w: malformed bit sequence", ErrValidation)

	// Domain errors (the function under test violated its contract)
	ErrDomain      = errors.New("function contract violation")
	ErrEmptyOutput = fmt.Errorf("%w: output has no addressable bits", ErrDomain)

	// Not found errors
	ErrNotFound     = errors.New("resource not found")
	ErrSpecNotFound = fmt.Errorf("%w: specification", ErrNotFound)
	ErrRunNotFound  = fmt.Errorf("%w: verification run", ErrNotFound)
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewConfigurationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfiguration, field, reason)
}

func NewEmptyOutputError(index uint64) error {
	return fmt.Errorf("%w at index %d", ErrEmptyOutput, index)
}

// Error checking helpers
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
