// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors shared across services and adapters. Handlers translate
// these into HTTP status codes; everything else wraps them with context.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation, e.g. a second warehouse
	// entry for the same part.
	ErrConflict = errors.New("already exists")

	// ErrInsufficientStock indicates an outgoing movement larger than the
	// on-hand quantity. It is a normal outcome, never retried.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrValidation indicates input rejected before any store interaction.
	ErrValidation = errors.New("validation failed")
)
