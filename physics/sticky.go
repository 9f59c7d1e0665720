// File: physics/sticky.go
package physics

import (
	"fmt"
	"math"
)

// Cluster is the rigid two-body assembly formed when two balls collide
// perfectly inelastically (Elasticity == 0) inside a sticky PlayArea.
// It rotates at constant angular velocity about its conserved center
// of mass until explicitly dissolved.
type Cluster struct {
	BallIndex1, BallIndex2 int

	comPosition Vec2
	comVelocity Vec2

	// rel1, rel2 are each ball's offset from the center of mass at the
	// instant the cluster formed, and rotate rigidly thereafter.
	rel1, rel2 Vec2

	omega float64 // constant angular velocity, rad/s
}

// newCluster forms a cluster from two colliding balls, conserving
// total momentum and angular momentum about the center of mass. Fails
// with ErrUnsupportedClusterArity only when the total mass is not
// positive; the two-ball arity itself is enforced by the engine
// (SetSticky and resolvePair), not here.
func newCluster(a, b *Ball) (*Cluster, error) {
	totalMass := a.Mass + b.Mass
	if totalMass <= 0 {
		return nil, fmt.Errorf("physics: cluster total mass %v: %w", totalMass, ErrUnsupportedClusterArity)
	}

	comPos := a.Position.Scale(a.Mass).Add(b.Position.Scale(b.Mass)).Scale(1 / totalMass)
	comVel := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass)).Scale(1 / totalMass)

	rel1 := a.Position.Sub(comPos)
	rel2 := b.Position.Sub(comPos)

	// Angular momentum about the COM, conserved from the pre-stick
	// velocities measured relative to the COM velocity.
	relVel1 := a.Velocity.Sub(comVel)
	relVel2 := b.Velocity.Sub(comVel)
	L := a.Mass*rel1.Cross(relVel1) + b.Mass*rel2.Cross(relVel2)

	I := a.Mass*rel1.LengthSq() + b.Mass*rel2.LengthSq()
	omega := 0.0
	if I > 0 {
		omega = L / I
	}

	c := &Cluster{
		BallIndex1: a.Index, BallIndex2: b.Index,
		comPosition: comPos, comVelocity: comVel,
		rel1: rel1, rel2: rel2,
		omega: omega,
	}
	c.apply(a, b)
	return c, nil
}

// apply writes the cluster's current rigid-body state into the two
// member balls.
func (c *Cluster) apply(a, b *Ball) {
	a.Position = c.comPosition.Add(c.rel1)
	b.Position = c.comPosition.Add(c.rel2)
	a.Velocity = c.comVelocity.Add(c.rel1.Perp().Scale(c.omega))
	b.Velocity = c.comVelocity.Add(c.rel2.Perp().Scale(c.omega))
}

// advance propagates the COM by dt and rotates both offsets by
// omega*dt, then applies the result to the member balls.
func (c *Cluster) advance(dt float64, a, b *Ball) {
	c.comPosition = c.comPosition.Add(c.comVelocity.Scale(dt))
	angle := c.omega * dt
	c.rel1 = c.rel1.Rotated(angle)
	c.rel2 = c.rel2.Rotated(angle)
	c.apply(a, b)
}

// boundingRadius returns the radius of the smallest circle, centered
// on the COM, that covers both member balls -- the cluster's "virtual
// ball" footprint for wall collisions.
func (c *Cluster) boundingRadius(system *BallSystem, a, b *Ball) float64 {
	ra, rb := system.EffectiveRadius(a), system.EffectiveRadius(b)
	d1 := c.rel1.Length() + ra
	d2 := c.rel2.Length() + rb
	return math.Max(d1, d2)
}

// stepCluster advances a formed cluster by dt, detecting wall contact
// of its bounding circle against the play area; each contact zeroes the
// COM velocity component normal to the wall struck, so each axis stops
// the cluster at most once (clusters do not collide with other balls:
// the arity gate guarantees they are the system's entire active set).
func (e *CollisionEngine) stepCluster(dt, elapsedTime float64, maxIterations int) error {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	c := e.System.Cluster()
	a, _ := e.System.Ball(c.BallIndex1)
	b, _ := e.System.Ball(c.BallIndex2)
	direction := math.Copysign(1, dt)

	t0 := elapsedTime
	t1 := elapsedTime + dt

	for iterations := 0; ; iterations++ {
		if iterations >= maxIterations {
			return fmt.Errorf("physics: cluster step aborted after %d iterations: %w", iterations, ErrPathologicalStep)
		}
		if !e.Area.ReflectingBorder {
			c.advance(t1-t0, a, b)
			return nil
		}

		radius := c.boundingRadius(e.System, a, b)
		virtual := &Ball{Position: c.comPosition, Velocity: c.comVelocity}
		horiz, vert := wallCollisionTimes(virtual, radius, direction, t0, e.Area.Bounds, e.Area)
		target := math.Min(horiz, vert)
		if (direction > 0 && target > t1) || (direction < 0 && target < t1) || math.IsInf(target, 1) {
			c.advance(t1-t0, a, b)
			return nil
		}

		c.advance(target-t0, a, b)
		t0 = target
		if math.Abs(horiz-target) <= e.Tol.TieTolerance {
			c.comVelocity.X = 0
		}
		if math.Abs(vert-target) <= e.Tol.TieTolerance {
			c.comVelocity.Y = 0
		}
		c.apply(a, b)
	}
}
