// File: physics/system.go
package physics

import "fmt"

// MaxPoolSize is the largest ball pool a BallSystem may hold. The
// engine examines all pairs directly (no broad-phase indexing), which
// only stays cheap because the population is capped this small.
const MaxPoolSize = 5

type ballSnapshot struct {
	position Vec2
	velocity Vec2
	mass     float64
}

// BallSystem holds a fixed pool of at most MaxPoolSize balls and the
// ordered subset currently active. Inactive pool entries retain their
// last state but don't participate in physics.
type BallSystem struct {
	pool   []*Ball
	active []*Ball // ordered by insertion (activation order)

	constantRadius      bool
	constantRadiusValue float64

	saved map[int]ballSnapshot

	cluster *Cluster
}

// NewBallSystem creates a pool of poolSize pre-allocated, inactive
// balls (1-based Index), poolSize in [1, MaxPoolSize].
func NewBallSystem(poolSize int) (*BallSystem, error) {
	if poolSize < 1 || poolSize > MaxPoolSize {
		return nil, fmt.Errorf("physics: pool size %d must be in [1,%d]", poolSize, MaxPoolSize)
	}
	pool := make([]*Ball, poolSize)
	for i := range pool {
		pool[i] = &Ball{Index: i + 1, Mass: 1, Radius: 1}
	}
	return &BallSystem{pool: pool, saved: make(map[int]ballSnapshot)}, nil
}

// Activate configures the pool slot at index (1-based) and adds it to
// the active membership list if not already active. Reactivating an
// already-active ball updates its state in place without reordering it.
func (s *BallSystem) Activate(index int, mass, radius float64, pos, vel Vec2) error {
	b, err := s.slot(index)
	if err != nil {
		return err
	}
	if err := validateBall(index, mass, radius, pos, vel); err != nil {
		return err
	}
	b.Mass, b.Radius, b.Position, b.Velocity = mass, radius, pos, vel
	if !b.active {
		b.active = true
		s.active = append(s.active, b)
	}
	return nil
}

// Deactivate removes the ball from the active membership list. The
// ball's state is left untouched in the pool.
func (s *BallSystem) Deactivate(index int) {
	for i, b := range s.active {
		if b.Index == index {
			s.active = append(s.active[:i], s.active[i+1:]...)
			b.active = false
			return
		}
	}
}

// Active returns the active balls in insertion order. Callers must not
// retain the slice past the next mutation of the system.
func (s *BallSystem) Active() []*Ball { return s.active }

// Ball returns the pool entry at the given 1-based index, active or not.
func (s *BallSystem) Ball(index int) (*Ball, bool) {
	if index < 1 || index > len(s.pool) {
		return nil, false
	}
	return s.pool[index-1], true
}

func (s *BallSystem) slot(index int) (*Ball, error) {
	if index < 1 || index > len(s.pool) {
		return nil, fmt.Errorf("physics: index %d out of pool range [1,%d]: %w", index, len(s.pool), ErrUnknownBall)
	}
	return s.pool[index-1], nil
}

// EffectiveRadius returns b's radius, overridden by the system's
// constant-radius value when that mode is enabled.
func (s *BallSystem) EffectiveRadius(b *Ball) float64 {
	if s.constantRadius {
		return s.constantRadiusValue
	}
	return b.Radius
}

// ConstantRadiusEnabled reports whether constant-radius mode is active.
func (s *BallSystem) ConstantRadiusEnabled() bool { return s.constantRadius }

// ConstantRadiusValue returns the fixed radius used when constant-radius
// mode is enabled.
func (s *BallSystem) ConstantRadiusValue() float64 { return s.constantRadiusValue }

// SetConstantRadiusMode toggles the constant-radius override. Toggling
// invalidates engine detection (handled by the caller, normally
// CollisionEngine.SetConstantRadiusMode).
func (s *BallSystem) SetConstantRadiusMode(enabled bool, radius float64) {
	s.constantRadius = enabled
	s.constantRadiusValue = radius
}

// AnyUserControlled reports whether any active ball currently has its
// UserControlled flag set.
func (s *BallSystem) AnyUserControlled() bool {
	for _, b := range s.active {
		if b.UserControlled {
			return true
		}
	}
	return false
}

// CenterOfMass returns the mass-weighted average position and velocity
// of the active balls. Returns the zero vector pair if no ball is active.
func (s *BallSystem) CenterOfMass() (position, velocity Vec2) {
	totalMass := 0.0
	for _, b := range s.active {
		totalMass += b.Mass
		position = position.Add(b.Position.Scale(b.Mass))
		velocity = velocity.Add(b.Velocity.Scale(b.Mass))
	}
	if totalMass == 0 {
		return Vec2{}, Vec2{}
	}
	return position.Scale(1 / totalMass), velocity.Scale(1 / totalMass)
}

// TotalMomentum returns the sum of mass*velocity over active balls.
func (s *BallSystem) TotalMomentum() Vec2 {
	var p Vec2
	for _, b := range s.active {
		p = p.Add(b.Momentum())
	}
	return p
}

// TotalKineticEnergy returns the sum of 1/2*m*|v|^2 over active balls.
func (s *BallSystem) TotalKineticEnergy() float64 {
	total := 0.0
	for _, b := range s.active {
		total += b.KineticEnergy()
	}
	return total
}

// Snapshot records the current position, velocity and mass of every
// active ball, for later Restore.
func (s *BallSystem) Snapshot() {
	s.saved = make(map[int]ballSnapshot, len(s.active))
	for _, b := range s.active {
		s.saved[b.Index] = ballSnapshot{position: b.Position, velocity: b.Velocity, mass: b.Mass}
	}
}

// Restore reapplies the last Snapshot to the balls it covered. Balls
// activated after the snapshot was taken are left untouched.
func (s *BallSystem) Restore() {
	for _, b := range s.active {
		if snap, ok := s.saved[b.Index]; ok {
			b.Position, b.Velocity, b.Mass = snap.position, snap.velocity, snap.mass
		}
	}
	s.dissolveCluster()
}

// Cluster returns the sticky cluster currently attached to the system,
// or nil if none is active.
func (s *BallSystem) Cluster() *Cluster { return s.cluster }

func (s *BallSystem) setCluster(c *Cluster) { s.cluster = c }

func (s *BallSystem) dissolveCluster() { s.cluster = nil }
