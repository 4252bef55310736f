package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Parameter validation errors
	ErrInvalidLambda       = errors.New("lambda must be positive")
	ErrNegativeSampleCount = errors.New("sample count cannot be negative")
	ErrNegativeAgentCount  = errors.New("agent count cannot be negative")
	ErrNilSource           = errors.New("generator source is nil")

	// Determinism errors
	ErrSeedMismatch     = errors.New("seed mismatch")
	ErrSequenceDiverged = errors.New("sample sequences diverged")
	ErrNonDeterministic = errors.New("non-deterministic result")
)

// NewValidationError builds a field-level validation error
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// NewSeedMismatchError reports a divergence while replaying a seed
func NewSeedMismatchError(seed uint32, position int, got, want int64) error {
	return fmt.Errorf("%w: seed %d position %d: got %d want %d", ErrSeedMismatch, seed, position, got, want)
}

// IsValidationError reports whether err is a parameter-validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidLambda) ||
		errors.Is(err, ErrNegativeSampleCount) ||
		errors.Is(err, ErrNegativeAgentCount) ||
		errors.Is(err, ErrNilSource)
}

// IsDeterminismError reports whether err indicates a reproducibility failure
func IsDeterminismError(err error) bool {
	return errors.Is(err, ErrSeedMismatch) ||
		errors.Is(err, ErrSequenceDiverged) ||
		errors.Is(err, ErrNonDeterministic)
}
