// File: simactor/messages.go
package simactor

import "github.com/lguibr/collide/physics"

// StepCommand advances the simulation by one manual tick using the
// actor's Clock, or by an explicit Delta if non-zero.
type StepCommand struct {
	Delta float64 // overrides the Clock's Delta() when non-zero
}

// StepResult is Respond-ed to a StepCommand sender.
type StepResult struct {
	Elapsed float64
	Err     error
}

// SetBallCommand activates or updates a ball slot.
type SetBallCommand struct {
	Index          int
	Mass, Radius   float64
	Position, Velocity physics.Vec2
}

// SetBallVelocityCommand updates a single ball's velocity (e.g. a user
// drag-release).
type SetBallVelocityCommand struct {
	Index    int
	Velocity physics.Vec2
}

// SetBallPositionCommand updates a single ball's position.
type SetBallPositionCommand struct {
	Index    int
	Position physics.Vec2
}

// SetUserControlledCommand marks a ball as under (or released from)
// direct user control.
type SetUserControlledCommand struct {
	Index      int
	Controlled bool
}

// DeactivateBallCommand removes a ball from the active set.
type DeactivateBallCommand struct {
	Index int
}

// SetStickyCommand toggles sticky-cluster mode.
type SetStickyCommand struct {
	Enabled bool
}

// SetElasticityCommand sets the play area's elasticity.
type SetElasticityCommand struct {
	Elasticity float64
}

// SetReflectingBorderCommand toggles wall reflection.
type SetReflectingBorderCommand struct {
	Enabled bool
}

// SetDirectionCommand sets the clock's stepping direction.
type SetDirectionCommand struct {
	Reversed bool
}

// SetSlowCommand toggles the clock's slow-speed factor.
type SetSlowCommand struct {
	Slow bool
}

// CommandAck is Respond-ed to any mutating command; Err is nil on
// success.
type CommandAck struct {
	Err error
}

// SnapshotQuery asks for a consistent read of every active ball plus
// the play area. Use Ask for a point-in-time view instead of
// inspecting engine state from another goroutine.
type SnapshotQuery struct{}

// BallView is a read-only copy of one active ball's public state.
type BallView struct {
	Index          int
	Mass, Radius   float64
	Position, Velocity physics.Vec2
	UserControlled bool
}

// SnapshotView is Respond-ed to a SnapshotQuery.
type SnapshotView struct {
	Balls   []BallView
	Bounds  physics.Bounds
	Elapsed float64
}
