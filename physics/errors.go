// File: physics/errors.go
package physics

import "errors"

// Sentinel errors for the collision engine's failure taxonomy. Callers
// use errors.Is against these; wrapping call sites add context with
// fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidBall is returned when a ball's mass, radius, position or
	// velocity fails the construction/setter precondition.
	ErrInvalidBall = errors.New("physics: invalid ball")

	// ErrInvalidPlayArea is returned when a PlayArea's bounds or
	// elasticity fail their precondition.
	ErrInvalidPlayArea = errors.New("physics: invalid play area")

	// ErrPathologicalStep is returned when Step exhausts its iteration
	// cap. The engine leaves ball state at the last consistent sub-step.
	ErrPathologicalStep = errors.New("physics: iteration cap reached")

	// ErrUnsupportedClusterArity is returned when sticky mode is
	// requested while more than two balls are active.
	ErrUnsupportedClusterArity = errors.New("physics: sticky clustering supports exactly two active balls")

	// ErrUnknownBall is returned by setters addressing an index outside
	// the pool's range. Inactive pool entries are still addressable.
	ErrUnknownBall = errors.New("physics: unknown ball index")

	// ErrPoolExhausted is returned when activating a ball would exceed
	// the system's fixed pool capacity.
	ErrPoolExhausted = errors.New("physics: ball pool exhausted")
)
