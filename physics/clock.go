// File: physics/clock.go
package physics

import "fmt"

// Speed factors applied to the manual step duration.
const (
	FullSpeedFactor = 1.0
	SlowSpeedFactor = 0.3
)

// DefaultManualStepDuration is the nominal per-tick duration a driver
// advances the model clock by on a manual step, expressed in seconds
// (roughly one frame at 30Hz).
const DefaultManualStepDuration = 1.0 / 30.0

// Clock tracks the model's elapsed time and stepping direction. It
// does not itself run a goroutine or wall-clock timer: callers (e.g.
// simactor.SimActor) decide when to call Advance.
type Clock struct {
	elapsed  float64
	reversed bool
	slow     bool

	stepDuration float64
}

// NewClock creates a Clock starting at elapsed time zero with the
// default manual step duration.
func NewClock() *Clock {
	return &Clock{stepDuration: DefaultManualStepDuration}
}

// Elapsed returns the current model time.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// SetReversed sets the stepping direction; true steps time backwards.
func (c *Clock) SetReversed(reversed bool) { c.reversed = reversed }

// Reversed reports the current stepping direction.
func (c *Clock) Reversed() bool { return c.reversed }

// SetSlow toggles the slow-speed factor.
func (c *Clock) SetSlow(slow bool) { c.slow = slow }

// Slow reports whether the slow-speed factor is active.
func (c *Clock) Slow() bool { return c.slow }

// SetStepDuration overrides the nominal per-tick duration. duration
// must be positive.
func (c *Clock) SetStepDuration(duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("physics: step duration %v must be positive", duration)
	}
	c.stepDuration = duration
	return nil
}

// Delta returns the signed dt the next manual step should apply: the
// configured step duration, scaled by the speed factor, signed by the
// stepping direction.
func (c *Clock) Delta() float64 {
	factor := FullSpeedFactor
	if c.slow {
		factor = SlowSpeedFactor
	}
	dt := c.stepDuration * factor
	if c.reversed {
		return -dt
	}
	return dt
}

// Advance applies dt to the elapsed-time accumulator. Callers pass the
// same dt they fed to CollisionEngine.Step for the same tick.
func (c *Clock) Advance(dt float64) {
	c.elapsed += dt
}
