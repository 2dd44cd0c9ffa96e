package utils

import (
	"errors"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	// ErrStoreUnavailable marks any store-layer failure: the pool never came
	// up, a connection could not be acquired, or a query failed mid-flight.
	// The revenue service branches on it to serve degraded-mode data instead
	// of surfacing a hard failure.
	ErrStoreUnavailable = errors.New("store_unavailable")

	// ErrInvalidAmount is returned when a monetary total cannot be parsed
	// as an exact decimal.
	ErrInvalidAmount = errors.New("invalid_amount")
)
