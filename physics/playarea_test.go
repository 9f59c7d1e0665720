// File: physics/playarea_test.go
package physics

import (
	"errors"
	"testing"
)

func TestNewPlayAreaValidation(t *testing.T) {
	bounds := Bounds{0, 0, 100, 100}
	if _, err := NewPlayArea(bounds, -0.1, true, false); !errors.Is(err, ErrInvalidPlayArea) {
		t.Errorf("expected ErrInvalidPlayArea for negative elasticity, got %v", err)
	}
	if _, err := NewPlayArea(bounds, 1.1, true, false); !errors.Is(err, ErrInvalidPlayArea) {
		t.Errorf("expected ErrInvalidPlayArea for elasticity > 1, got %v", err)
	}
	if _, err := NewPlayArea(Bounds{0, 0, -1, 100}, 1, true, false); !errors.Is(err, ErrInvalidPlayArea) {
		t.Errorf("expected ErrInvalidPlayArea for degenerate bounds, got %v", err)
	}
	area, err := NewPlayArea(bounds, 1, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if area.Bounds.Width() != 100 || area.Bounds.Height() != 100 {
		t.Errorf("unexpected bounds extents: %+v", area.Bounds)
	}
}

func TestOneDimensionalStripWallsInactive(t *testing.T) {
	strip, err := NewPlayArea(Bounds{0, 5, 100, 5}, 1, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strip.verticalWallsActive() {
		t.Error("expected vertical walls inactive for zero-height strip")
	}
	if !strip.horizontalWallsActive() {
		t.Error("expected horizontal walls active for positive-width strip")
	}
}

func TestSetElasticityValidation(t *testing.T) {
	area, _ := NewPlayArea(Bounds{0, 0, 10, 10}, 0.5, true, false)
	if err := area.SetElasticity(2); !errors.Is(err, ErrInvalidPlayArea) {
		t.Errorf("expected ErrInvalidPlayArea, got %v", err)
	}
	if err := area.SetElasticity(0.9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if area.Elasticity != 0.9 {
		t.Errorf("Elasticity = %v, want 0.9", area.Elasticity)
	}
}

func TestPaddleCenterAndPropagate(t *testing.T) {
	p := &Paddle{Position: Vec2{0, 0}, Width: 10, Height: 20, Velocity: Vec2{1, 0}}
	if got := p.Center(); got != (Vec2{5, 10}) {
		t.Errorf("Center = %v, want {5 10}", got)
	}
	p.propagate(2)
	if p.Position != (Vec2{2, 0}) {
		t.Errorf("propagate moved paddle to %v, want {2 0}", p.Position)
	}
}
