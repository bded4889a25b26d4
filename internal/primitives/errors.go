package primitives

import "errors"

// Definition errors. Reported before any run starts.
var (
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrUndefinedState   = errors.New("undefined state")
	ErrDuplicateRule    = errors.New("duplicate transition rule")
	ErrInvalidRule      = errors.New("invalid transition rule")
	ErrNoInitialState   = errors.New("initial state is not set")
	ErrInvalidConfig    = errors.New("invalid program config")
)

// ErrOutOfBounds is the addressing fault: a tape index or head position
// outside [0, capacity).
var ErrOutOfBounds = errors.New("tape index out of bounds")

// ErrCapacity is returned when a bulk write does not fit in the remaining tape.
var ErrCapacity = errors.New("tape capacity exceeded")
