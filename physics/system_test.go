// File: physics/system_test.go
package physics

import (
	"errors"
	"testing"
)

func TestNewBallSystemValidatesPoolSize(t *testing.T) {
	if _, err := NewBallSystem(0); err == nil {
		t.Error("expected error for pool size 0")
	}
	if _, err := NewBallSystem(MaxPoolSize + 1); err == nil {
		t.Error("expected error for pool size above MaxPoolSize")
	}
	sys, err := NewBallSystem(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sys.pool) != 3 {
		t.Errorf("pool size = %d, want 3", len(sys.pool))
	}
}

func TestActivateAndDeactivate(t *testing.T) {
	sys, _ := NewBallSystem(3)
	if err := sys.Activate(1, 2, 1, Vec2{0, 0}, Vec2{1, 0}); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if len(sys.Active()) != 1 {
		t.Fatalf("Active() len = %d, want 1", len(sys.Active()))
	}
	sys.Deactivate(1)
	if len(sys.Active()) != 0 {
		t.Errorf("Active() len after deactivate = %d, want 0", len(sys.Active()))
	}
}

func TestActivateRejectsInvalidBall(t *testing.T) {
	sys, _ := NewBallSystem(1)
	err := sys.Activate(1, -1, 1, Vec2{}, Vec2{})
	if !errors.Is(err, ErrInvalidBall) {
		t.Errorf("expected ErrInvalidBall, got %v", err)
	}
}

func TestActivateUnknownIndex(t *testing.T) {
	sys, _ := NewBallSystem(1)
	err := sys.Activate(2, 1, 1, Vec2{}, Vec2{})
	if !errors.Is(err, ErrUnknownBall) {
		t.Errorf("expected ErrUnknownBall, got %v", err)
	}
}

func TestReactivateDoesNotReorder(t *testing.T) {
	sys, _ := NewBallSystem(3)
	sys.Activate(1, 1, 1, Vec2{}, Vec2{})
	sys.Activate(2, 1, 1, Vec2{}, Vec2{})
	sys.Activate(1, 5, 1, Vec2{9, 9}, Vec2{})

	active := sys.Active()
	if len(active) != 2 {
		t.Fatalf("len(Active()) = %d, want 2", len(active))
	}
	if active[0].Index != 1 || active[1].Index != 2 {
		t.Errorf("reactivation reordered active set: %+v", active)
	}
	if active[0].Mass != 5 {
		t.Errorf("reactivation did not update mass: %+v", active[0])
	}
}

func TestTotalMomentumAndEnergy(t *testing.T) {
	sys, _ := NewBallSystem(2)
	sys.Activate(1, 2, 1, Vec2{0, 0}, Vec2{3, 0})
	sys.Activate(2, 1, 1, Vec2{5, 0}, Vec2{0, 4})

	p := sys.TotalMomentum()
	if !almostEqual(p.X, 6) || !almostEqual(p.Y, 4) {
		t.Errorf("TotalMomentum = %v, want {6 4}", p)
	}

	ke := sys.TotalKineticEnergy()
	want := 0.5*2*9 + 0.5*1*16
	if !almostEqual(ke, want) {
		t.Errorf("TotalKineticEnergy = %v, want %v", ke, want)
	}
}

func TestCenterOfMass(t *testing.T) {
	sys, _ := NewBallSystem(2)
	sys.Activate(1, 1, 1, Vec2{0, 0}, Vec2{1, 0})
	sys.Activate(2, 1, 1, Vec2{10, 0}, Vec2{-1, 0})

	pos, vel := sys.CenterOfMass()
	if !almostEqual(pos.X, 5) || !almostEqual(pos.Y, 0) {
		t.Errorf("CenterOfMass position = %v, want {5 0}", pos)
	}
	if !almostEqual(vel.X, 0) {
		t.Errorf("CenterOfMass velocity.X = %v, want 0", vel.X)
	}
}

func TestSnapshotRestore(t *testing.T) {
	sys, _ := NewBallSystem(1)
	sys.Activate(1, 1, 1, Vec2{0, 0}, Vec2{1, 0})
	sys.Snapshot()

	b, _ := sys.Ball(1)
	b.Position = Vec2{99, 99}
	b.Velocity = Vec2{-5, -5}

	sys.Restore()
	b, _ = sys.Ball(1)
	if b.Position != (Vec2{0, 0}) || b.Velocity != (Vec2{1, 0}) {
		t.Errorf("Restore did not reset ball state: %+v", b)
	}
}

func TestConstantRadiusMode(t *testing.T) {
	sys, _ := NewBallSystem(1)
	sys.Activate(1, 1, 3, Vec2{}, Vec2{})
	b, _ := sys.Ball(1)

	if got := sys.EffectiveRadius(b); got != 3 {
		t.Errorf("EffectiveRadius = %v, want 3", got)
	}
	sys.SetConstantRadiusMode(true, 10)
	if got := sys.EffectiveRadius(b); got != 10 {
		t.Errorf("EffectiveRadius after constant mode = %v, want 10", got)
	}
}
