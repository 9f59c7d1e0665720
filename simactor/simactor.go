// File: simactor/simactor.go
package simactor

import (
	"log"

	"github.com/lguibr/collide/actor"
	"github.com/lguibr/collide/physics"
)

// SimActor owns one physics.BallSystem, physics.PlayArea and
// physics.CollisionEngine, and serializes all access to them through
// its mailbox: every mutation and every query is a message, so two
// goroutines never touch the simulation concurrently.
type SimActor struct {
	system *physics.BallSystem
	area   *physics.PlayArea
	engine *physics.CollisionEngine
	clock  *physics.Clock
}

// NewProducer returns an actor.Producer that builds a SimActor around
// the given pool size and play area bounds/elasticity/reflection/sticky
// settings.
func NewProducer(poolSize int, bounds physics.Bounds, elasticity float64, reflectingBorder, sticky bool) actor.Producer {
	return func() actor.Actor {
		system, err := physics.NewBallSystem(poolSize)
		if err != nil {
			panic(err) // fail fast on construction-time misconfiguration
		}
		area, err := physics.NewPlayArea(bounds, elasticity, reflectingBorder, sticky)
		if err != nil {
			panic(err)
		}
		return &SimActor{
			system: system,
			area:   area,
			engine: physics.NewCollisionEngine(system, area),
			clock:  physics.NewClock(),
		}
	}
}

// Receive dispatches every message type this actor understands.
func (s *SimActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started, actor.Stopping, actor.Stopped:
		return

	case StepCommand:
		dt := msg.Delta
		if dt == 0 {
			dt = s.clock.Delta()
		}
		err := s.engine.Step(dt, s.clock.Elapsed(), 0)
		if err == nil {
			s.clock.Advance(dt)
		} else {
			log.Printf("simactor: step failed: %v", err)
		}
		ctx.Respond(StepResult{Elapsed: s.clock.Elapsed(), Err: err})

	case SetBallCommand:
		err := s.engine.System.Activate(msg.Index, msg.Mass, msg.Radius, msg.Position, msg.Velocity)
		if err == nil {
			// Route the change through the engine so pending detection is
			// cleared and any sticky cluster dissolves.
			indices := make([]int, 0, len(s.system.Active()))
			for _, b := range s.system.Active() {
				indices = append(indices, b.Index)
			}
			err = s.engine.SetActiveBalls(indices)
		}
		ctx.Respond(CommandAck{Err: err})

	case SetBallVelocityCommand:
		ctx.Respond(CommandAck{Err: s.engine.SetBallVelocity(msg.Index, msg.Velocity)})

	case SetBallPositionCommand:
		ctx.Respond(CommandAck{Err: s.engine.SetBallPosition(msg.Index, msg.Position)})

	case SetUserControlledCommand:
		ctx.Respond(CommandAck{Err: s.engine.SetUserControlled(msg.Index, msg.Controlled)})

	case DeactivateBallCommand:
		remaining := make([]int, 0, len(s.system.Active()))
		for _, b := range s.system.Active() {
			if b.Index != msg.Index {
				remaining = append(remaining, b.Index)
			}
		}
		ctx.Respond(CommandAck{Err: s.engine.SetActiveBalls(remaining)})

	case SetStickyCommand:
		ctx.Respond(CommandAck{Err: s.engine.SetSticky(msg.Enabled)})

	case SetElasticityCommand:
		ctx.Respond(CommandAck{Err: s.engine.SetElasticity(msg.Elasticity)})

	case SetReflectingBorderCommand:
		s.engine.SetReflectingBorder(msg.Enabled)
		ctx.Respond(CommandAck{})

	case SetDirectionCommand:
		s.clock.SetReversed(msg.Reversed)
		ctx.Respond(CommandAck{})

	case SetSlowCommand:
		s.clock.SetSlow(msg.Slow)
		ctx.Respond(CommandAck{})

	case SnapshotQuery:
		ctx.Respond(s.snapshot())

	default:
		log.Printf("simactor: unhandled message %T", msg)
	}
}

func (s *SimActor) snapshot() SnapshotView {
	active := s.system.Active()
	balls := make([]BallView, len(active))
	for i, b := range active {
		balls[i] = BallView{
			Index: b.Index, Mass: b.Mass, Radius: s.system.EffectiveRadius(b),
			Position: b.Position, Velocity: b.Velocity, UserControlled: b.UserControlled,
		}
	}
	return SnapshotView{Balls: balls, Bounds: s.area.Bounds, Elapsed: s.clock.Elapsed()}
}
