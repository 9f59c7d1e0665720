// File: physics/paddle.go
package physics

import "math"

// paddleCollisionTime finds the absolute model time at which a ball's
// bounding circle first touches a moving rectangular Paddle. The
// paddle rectangle is expanded by the ball's radius (a Minkowski sum)
// and the ball is ray-cast against the expanded slab in the paddle's
// rest frame, giving an exact time of contact rather than a per-frame
// overlap test. onHoriz/onVert report which face (vertical edge /
// horizontal edge) the ball reaches at the returned time.
func paddleCollisionTime(ball *Ball, radius float64, p *Paddle, direction, elapsed float64) (t float64, onHoriz, onVert, ok bool) {
	relPos := ball.Position.Sub(p.Center())
	relVel := ball.Velocity.Sub(p.Velocity).Scale(direction)

	halfW := p.Width/2 + radius
	halfH := p.Height/2 + radius

	enterX, exitX, okX := slabEntry(relPos.X, relVel.X, -halfW, halfW)
	enterY, exitY, okY := slabEntry(relPos.Y, relVel.Y, -halfH, halfH)

	if !okX && !okY {
		return 0, false, false, false
	}
	if !okX {
		enterX, exitX = math.Inf(-1), math.Inf(1)
	}
	if !okY {
		enterY, exitY = math.Inf(-1), math.Inf(1)
	}

	enter := math.Max(enterX, enterY)
	exit := math.Min(exitX, exitY)
	if enter > exit || enter < 0 {
		return 0, false, false, false
	}

	return elapsed + enter*direction, enter == enterX, enter == enterY, true
}

// slabEntry solves for the entry/exit parametric time of a 1D ray
// (position c, velocity v) against the interval [lo, hi]. ok is false
// when v == 0 and c already lies outside the interval (never enters).
func slabEntry(c, v, lo, hi float64) (enter, exit float64, ok bool) {
	if v == 0 {
		if c >= lo && c <= hi {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}
	t1 := (lo - c) / v
	t2 := (hi - c) / v
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// resolvePaddle reflects the ball's velocity component(s) corresponding
// to the face(s) struck, treating the paddle as an infinite-mass wall
// moving at constant velocity (an elastic bounce off the paddle's own
// rest frame, then transformed back).
func (e *CollisionEngine) resolvePaddle(ballIndex, paddleIndex int, onHoriz, onVert bool) {
	b, _ := e.System.Ball(ballIndex)
	var p *Paddle
	for _, candidate := range e.Area.Paddles {
		if candidate.Index == paddleIndex {
			p = candidate
			break
		}
	}
	if p == nil {
		return
	}
	rel := b.Velocity.Sub(p.Velocity)
	if onHoriz {
		rel.X = -rel.X
	}
	if onVert {
		rel.Y = -rel.Y
	}
	b.Velocity = rel.Add(p.Velocity)
}
