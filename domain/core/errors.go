package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrSpecimenNotFound = fmt.Errorf("%w: specimen", ErrNotFound)
	ErrReportNotFound   = fmt.Errorf("%w: program report", ErrNotFound)

	// Input errors
	ErrInsufficientInput = errors.New("insufficient input")
	ErrProgramTooLarge   = errors.New("breeding program too large")

	// Internal-only: recovered locally by omitting the narrative
	ErrEnrichmentUnavailable = errors.New("narrative enrichment unavailable")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewInsufficientInputError(got, want int) error {
	return fmt.Errorf("%w: got %d specimens, need at least %d", ErrInsufficientInput, got, want)
}

func NewProgramTooLargeError(got, limit int) error {
	return fmt.Errorf("%w: %d specimens exceeds limit of %d", ErrProgramTooLarge, got, limit)
}

func NewEnrichmentError(cause error) error {
	return fmt.Errorf("%w: %v", ErrEnrichmentUnavailable, cause)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInsufficientInputError(err error) bool {
	return errors.Is(err, ErrInsufficientInput)
}

func IsProgramTooLargeError(err error) bool {
	return errors.Is(err, ErrProgramTooLarge)
}
