// File: config/yaml_test.go
package config

import (
	"path/filepath"
	"testing"

	"github.com/lguibr/collide/physics"
)

func TestSaveAndLoadPlayAreaPresetRoundTrips(t *testing.T) {
	area, err := physics.NewPlayArea(physics.Bounds{MinX: 0, MinY: 0, MaxX: 200, MaxY: 100}, 0.8, true, false)
	if err != nil {
		t.Fatalf("NewPlayArea: %v", err)
	}
	preset := FromPlayArea(area)

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := SavePlayAreaPreset(path, preset); err != nil {
		t.Fatalf("SavePlayAreaPreset: %v", err)
	}

	loaded, err := LoadPlayAreaPreset(path)
	if err != nil {
		t.Fatalf("LoadPlayAreaPreset: %v", err)
	}
	if loaded != preset {
		t.Errorf("round-tripped preset = %+v, want %+v", loaded, preset)
	}

	rebuilt, err := loaded.PlayArea()
	if err != nil {
		t.Fatalf("PlayArea: %v", err)
	}
	if rebuilt.Bounds != area.Bounds || rebuilt.Elasticity != area.Elasticity {
		t.Errorf("rebuilt play area = %+v, want bounds %+v elasticity %v", rebuilt, area.Bounds, area.Elasticity)
	}
}
