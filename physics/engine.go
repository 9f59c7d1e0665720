// File: physics/engine.go
package physics

import (
	"fmt"
	"math"
	"sort"
)

// DefaultMaxIterations is the safety cap on collisions resolved within
// a single Step call (MAX_ITERATIONS in the spec's tolerance table).
const DefaultMaxIterations = 2000

type recordKind int

const (
	kindPair recordKind = iota
	kindWall
	kindPaddle
)

type collisionRecord struct {
	kind    recordKind
	i, j    int // pool indices (1-based); j unused for wall/paddle
	paddle  int // paddle index, for kindPaddle
	time    float64
	valid   bool
	onHoriz bool // wall/paddle only: whether the horizontal axis triggered at time
	onVert  bool // wall/paddle only: whether the vertical axis triggered at time
}

// CollisionEngine detects collisions ahead of time from current
// trajectories and resolves them in earliest-event order. It operates
// on a BallSystem and PlayArea it does not own; callers retain those
// references too.
type CollisionEngine struct {
	System *BallSystem
	Area   *PlayArea
	Tol    Tolerances

	direction float64 // sign of the most recently applied step; 0 before the first nonzero step

	pairs   [MaxPoolSize][MaxPoolSize]collisionRecord
	walls   [MaxPoolSize]collisionRecord
	paddles map[[2]int]collisionRecord // (ball index, paddle index) -> record
}

// NewCollisionEngine builds an engine around the given system and area.
func NewCollisionEngine(system *BallSystem, area *PlayArea) *CollisionEngine {
	return &CollisionEngine{
		System:  system,
		Area:    area,
		Tol:     DefaultTolerances(),
		paddles: make(map[[2]int]collisionRecord),
	}
}

// --- Invalidation -----------------------------------------------------

func (e *CollisionEngine) invalidateAll() {
	for i := range e.pairs {
		for j := range e.pairs[i] {
			e.pairs[i][j].valid = false
		}
	}
	for i := range e.walls {
		e.walls[i].valid = false
	}
	e.paddles = make(map[[2]int]collisionRecord)
}

func (e *CollisionEngine) invalidateBall(index int) {
	for j := range e.pairs[index-1] {
		e.pairs[index-1][j].valid = false
	}
	for i := range e.pairs {
		e.pairs[i][index-1].valid = false
	}
	e.walls[index-1].valid = false
	for key := range e.paddles {
		if key[0] == index {
			delete(e.paddles, key)
		}
	}
}

// --- UI-facing mutators (invoked outside Step) -------------------------

// SetBallPosition sets a ball's position and invalidates all pending
// detection (a user drag disturbs every trajectory).
func (e *CollisionEngine) SetBallPosition(index int, pos Vec2) error {
	b, ok := e.System.Ball(index)
	if !ok {
		return fmt.Errorf("physics: ball %d: %w", index, ErrUnknownBall)
	}
	if !finiteVec2(pos) {
		return fmt.Errorf("physics: ball %d: non-finite position %v: %w", index, pos, ErrInvalidBall)
	}
	b.Position = pos
	e.dissolveIfClustered(index)
	e.invalidateAll()
	return nil
}

// SetBallVelocity sets a ball's velocity and invalidates all pending
// detection.
func (e *CollisionEngine) SetBallVelocity(index int, vel Vec2) error {
	b, ok := e.System.Ball(index)
	if !ok {
		return fmt.Errorf("physics: ball %d: %w", index, ErrUnknownBall)
	}
	if !finiteVec2(vel) {
		return fmt.Errorf("physics: ball %d: non-finite velocity %v: %w", index, vel, ErrInvalidBall)
	}
	b.Velocity = vel
	e.dissolveIfClustered(index)
	e.invalidateAll()
	return nil
}

// SetBallMass sets a ball's mass and invalidates all pending detection.
func (e *CollisionEngine) SetBallMass(index int, mass float64) error {
	b, ok := e.System.Ball(index)
	if !ok {
		return fmt.Errorf("physics: ball %d: %w", index, ErrUnknownBall)
	}
	if mass <= 0 {
		return fmt.Errorf("physics: ball %d: mass %v must be positive: %w", index, mass, ErrInvalidBall)
	}
	b.Mass = mass
	e.dissolveIfClustered(index)
	e.invalidateAll()
	return nil
}

// SetUserControlled marks a ball as under (or released from) user
// control. Releasing control (true -> false) takes an automatic
// snapshot of the whole system so it can be restored later.
func (e *CollisionEngine) SetUserControlled(index int, controlled bool) error {
	b, ok := e.System.Ball(index)
	if !ok {
		return fmt.Errorf("physics: ball %d: %w", index, ErrUnknownBall)
	}
	wasControlled := b.UserControlled
	b.UserControlled = controlled
	if wasControlled && !controlled {
		e.System.Snapshot()
	}
	return nil
}

// SetActiveBalls replaces the active set by activating/deactivating
// pool slots to match indices exactly, and invalidates all detection.
func (e *CollisionEngine) SetActiveBalls(indices []int) error {
	want := make(map[int]bool, len(indices))
	for _, idx := range indices {
		want[idx] = true
	}
	for _, b := range append([]*Ball{}, e.System.Active()...) {
		if !want[b.Index] {
			e.System.Deactivate(b.Index)
		}
	}
	for _, idx := range indices {
		b, ok := e.System.Ball(idx)
		if !ok {
			return fmt.Errorf("physics: ball %d: %w", idx, ErrUnknownBall)
		}
		if err := e.System.Activate(idx, b.Mass, b.Radius, b.Position, b.Velocity); err != nil {
			return err
		}
	}
	e.System.dissolveCluster()
	e.invalidateAll()
	return nil
}

// SetConstantRadiusMode toggles the constant-radius override and
// invalidates all detection.
func (e *CollisionEngine) SetConstantRadiusMode(enabled bool, radius float64) {
	e.System.SetConstantRadiusMode(enabled, radius)
	e.invalidateAll()
}

// SetReflectingBorder toggles wall reflection and invalidates all
// detection.
func (e *CollisionEngine) SetReflectingBorder(enabled bool) {
	e.Area.ReflectingBorder = enabled
	e.invalidateAll()
}

// SetElasticity sets the play area's elasticity. Leaving e=0 dissolves
// any active sticky cluster, since sticking only ever happens at zero
// elasticity; this is the only elasticity-driven disturbance, so
// pair/wall detection is not invalidated (collision times don't depend
// on elasticity).
func (e *CollisionEngine) SetElasticity(elasticity float64) error {
	wasZero := e.Area.Elasticity == 0
	if err := e.Area.SetElasticity(elasticity); err != nil {
		return err
	}
	if wasZero && elasticity != 0 {
		e.System.dissolveCluster()
	}
	return nil
}

// SetSticky enables or disables sticky-on-inelastic-collision mode.
// Enabling fails with ErrUnsupportedClusterArity if more than two
// balls are currently active.
func (e *CollisionEngine) SetSticky(enabled bool) error {
	if enabled && len(e.System.Active()) > 2 {
		return fmt.Errorf("physics: %d active balls: %w", len(e.System.Active()), ErrUnsupportedClusterArity)
	}
	e.Area.IsSticky = enabled
	return nil
}

func (e *CollisionEngine) dissolveIfClustered(index int) {
	c := e.System.Cluster()
	if c != nil && (c.BallIndex1 == index || c.BallIndex2 == index) {
		e.System.dissolveCluster()
	}
}

// --- Detection ----------------------------------------------------------

func (e *CollisionEngine) detect(direction, elapsed float64) {
	active := e.System.Active()
	for ai := 0; ai < len(active); ai++ {
		for bi := ai + 1; bi < len(active); bi++ {
			a, b := active[ai], active[bi]
			i, j := a.Index, b.Index
			if i > j {
				i, j = j, i
				a, b = b, a
			}
			rec := &e.pairs[i-1][j-1]
			if rec.valid {
				continue
			}
			ra, rb := e.System.EffectiveRadius(a), e.System.EffectiveRadius(b)
			t, ok := pairCollisionTime(a, b, ra, rb, direction, elapsed, e.Tol)
			*rec = collisionRecord{kind: kindPair, i: i, j: j, time: t, valid: ok}
		}
	}

	if e.Area.ReflectingBorder {
		for _, b := range active {
			rec := &e.walls[b.Index-1]
			if rec.valid {
				continue
			}
			radius := e.System.EffectiveRadius(b)
			horiz, vert := wallCollisionTimes(b, radius, direction, elapsed, e.Area.Bounds, e.Area)
			t := math.Min(horiz, vert)
			if math.IsInf(t, 1) {
				*rec = collisionRecord{kind: kindWall, i: b.Index, valid: false}
				continue
			}
			*rec = collisionRecord{
				kind: kindWall, i: b.Index, time: t, valid: true,
				onHoriz: math.Abs(horiz-t) <= e.Tol.TieTolerance,
				onVert:  math.Abs(vert-t) <= e.Tol.TieTolerance,
			}
		}
	}

	for _, b := range active {
		for _, p := range e.Area.Paddles {
			key := [2]int{b.Index, p.Index}
			if rec, ok := e.paddles[key]; ok && rec.valid {
				continue
			}
			radius := e.System.EffectiveRadius(b)
			t, onHoriz, onVert, ok := paddleCollisionTime(b, radius, p, direction, elapsed)
			e.paddles[key] = collisionRecord{kind: kindPaddle, i: b.Index, paddle: p.Index, time: t, valid: ok, onHoriz: onHoriz, onVert: onVert}
		}
	}
}

func (e *CollisionEngine) collectWindow(lo, hi float64) []collisionRecord {
	var out []collisionRecord
	for i := range e.pairs {
		for j := range e.pairs[i] {
			r := e.pairs[i][j]
			if r.valid && r.kind == kindPair && r.time >= lo-1e-12 && r.time <= hi+1e-12 {
				out = append(out, r)
			}
		}
	}
	for _, r := range e.walls {
		if r.valid && r.time >= lo-1e-12 && r.time <= hi+1e-12 {
			out = append(out, r)
		}
	}
	for _, r := range e.paddles {
		if r.valid && r.time >= lo-1e-12 && r.time <= hi+1e-12 {
			out = append(out, r)
		}
	}
	return out
}

// selectEarliest returns every record tying for the extremal time
// (minimum for direction>0, maximum for direction<0) within
// TieTolerance, ordered deterministically by (i, j) ascending.
func (e *CollisionEngine) selectEarliest(candidates []collisionRecord, direction float64) []collisionRecord {
	extremal := candidates[0].time
	for _, c := range candidates[1:] {
		if direction > 0 && c.time < extremal {
			extremal = c.time
		} else if direction < 0 && c.time > extremal {
			extremal = c.time
		}
	}
	var selected []collisionRecord
	for _, c := range candidates {
		if math.Abs(c.time-extremal) <= e.Tol.TieTolerance {
			selected = append(selected, c)
		}
	}
	sort.Slice(selected, func(a, b int) bool {
		if selected[a].i != selected[b].i {
			return selected[a].i < selected[b].i
		}
		return selected[a].j < selected[b].j
	})
	return selected
}

func (e *CollisionEngine) propagateAll(dt float64) {
	for _, b := range e.System.Active() {
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}
	for _, p := range e.Area.Paddles {
		p.propagate(dt)
	}
}

// Step advances the active BallSystem by the signed delta dt, treating
// elapsedTime as the model clock at entry. dt == 0 is a no-op.
// maxIterations <= 0 uses DefaultMaxIterations.
func (e *CollisionEngine) Step(dt, elapsedTime float64, maxIterations int) error {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if dt == 0 {
		return nil
	}

	requested := math.Copysign(1, dt)
	if e.direction != 0 && requested != e.direction {
		e.invalidateAll()
		if e.System.Cluster() != nil {
			e.System.dissolveCluster()
		}
	}
	e.direction = requested

	if e.System.Cluster() != nil {
		return e.stepCluster(dt, elapsedTime, maxIterations)
	}

	t0 := elapsedTime
	t1 := elapsedTime + dt
	lo, hi := t0, t1
	if lo > hi {
		lo, hi = hi, lo
	}

	for iterations := 0; ; iterations++ {
		if iterations >= maxIterations {
			return fmt.Errorf("physics: step aborted after %d iterations: %w", iterations, ErrPathologicalStep)
		}
		e.detect(requested, t0)

		candidates := e.collectWindow(math.Min(t0, t1), math.Max(t0, t1))
		if len(candidates) == 0 {
			e.propagateAll(t1 - t0)
			return nil
		}

		selected := e.selectEarliest(candidates, requested)
		target := selected[0].time
		e.propagateAll(target - t0)
		t0 = target

		for _, rec := range selected {
			e.resolve(rec)
		}
		if e.System.Cluster() != nil {
			// A stick collision occurred mid-step; hand off the
			// remainder of the step to the cluster evolution.
			return e.stepCluster(t1-t0, t0, maxIterations-iterations-1)
		}
	}
}

func (e *CollisionEngine) resolve(rec collisionRecord) {
	switch rec.kind {
	case kindPair:
		e.resolvePair(rec.i, rec.j)
		e.invalidateBall(rec.i)
		e.invalidateBall(rec.j)
	case kindWall:
		e.resolveWall(rec.i, rec.onHoriz, rec.onVert)
		e.invalidateBall(rec.i)
	case kindPaddle:
		e.resolvePaddle(rec.i, rec.paddle, rec.onHoriz, rec.onVert)
		e.invalidateBall(rec.i)
	}
}

// resolvePair applies the restitution formula to the pair's normal and
// tangential velocity components, or forms a sticky cluster instead
// when elasticity is 0 and the area is sticky.
func (e *CollisionEngine) resolvePair(i, j int) {
	a, _ := e.System.Ball(i)
	b, _ := e.System.Ball(j)

	if e.Area.Elasticity == 0 && e.Area.IsSticky && len(e.System.Active()) <= 2 {
		cluster, err := newCluster(a, b)
		if err == nil {
			e.System.setCluster(cluster)
			return
		}
		// fall through to ordinary inelastic response on arity failure
	}

	n := b.Position.Sub(a.Position).Normalized()
	if n == (Vec2{}) {
		n = Vec2{1, 0}
	}
	t := n.Perp()

	van, vat := a.Velocity.Dot(n), a.Velocity.Dot(t)
	vbn, vbt := b.Velocity.Dot(n), b.Velocity.Dot(t)

	m1, m2, e_ := a.Mass, b.Mass, e.Area.Elasticity
	vanP := ((m1-m2*e_)*van + m2*(1+e_)*vbn) / (m1 + m2)
	vbnP := ((m2-m1*e_)*vbn + m1*(1+e_)*van) / (m1 + m2)

	if math.Abs(vanP) < e.Tol.NormalSnap {
		vanP = 0
	}
	if math.Abs(vbnP) < e.Tol.NormalSnap {
		vbnP = 0
	}

	a.Velocity = n.Scale(vanP).Add(t.Scale(vat))
	b.Velocity = n.Scale(vbnP).Add(t.Scale(vbt))
}

// resolveWall reflects the ball's velocity component(s) for whichever
// wall face(s) it struck, scaled by the play area's elasticity.
func (e *CollisionEngine) resolveWall(index int, onHoriz, onVert bool) {
	b, _ := e.System.Ball(index)
	ee := e.Area.Elasticity
	if onHoriz {
		b.Velocity.X = -ee * b.Velocity.X
	}
	if onVert {
		b.Velocity.Y = -ee * b.Velocity.Y
	}
}
