package direction

import "errors"

var (
	// ErrInvalidDirectionString is returned when a string names no direction.
	ErrInvalidDirectionString = errors.New("direction: invalid direction string")

	// ErrNotCardinal is returned when a vector is not axis-aligned.
	ErrNotCardinal = errors.New("direction: vector is not cardinal")

	// ErrDegenerateVector is returned when a zero vector has to be rounded.
	ErrDegenerateVector = errors.New("direction: zero vector has no direction")

	// ErrInvalidVariant reports a Direction value outside the four variants.
	ErrInvalidVariant = errors.New("direction: invalid variant")
)
