// File: config/yaml.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lguibr/collide/physics"
)

// PlayAreaPreset is the on-disk, YAML-friendly description of a
// physics.PlayArea, used to save and reload enclosure presets (e.g.
// "narrow corridor", "sticky 2-ball box") without recompiling.
type PlayAreaPreset struct {
	MinX             float64 `yaml:"minX"`
	MinY             float64 `yaml:"minY"`
	MaxX             float64 `yaml:"maxX"`
	MaxY             float64 `yaml:"maxY"`
	Elasticity       float64 `yaml:"elasticity"`
	ReflectingBorder bool    `yaml:"reflectingBorder"`
	IsSticky         bool    `yaml:"isSticky"`
}

// FromPlayArea captures a physics.PlayArea's configuration as a preset.
// Paddles are intentionally not persisted: they are runtime obstacles,
// not part of the enclosure's identity.
func FromPlayArea(area *physics.PlayArea) PlayAreaPreset {
	return PlayAreaPreset{
		MinX: area.Bounds.MinX, MinY: area.Bounds.MinY,
		MaxX: area.Bounds.MaxX, MaxY: area.Bounds.MaxY,
		Elasticity:       area.Elasticity,
		ReflectingBorder: area.ReflectingBorder,
		IsSticky:         area.IsSticky,
	}
}

// PlayArea builds a physics.PlayArea from the preset.
func (p PlayAreaPreset) PlayArea() (*physics.PlayArea, error) {
	bounds := physics.Bounds{MinX: p.MinX, MinY: p.MinY, MaxX: p.MaxX, MaxY: p.MaxY}
	return physics.NewPlayArea(bounds, p.Elasticity, p.ReflectingBorder, p.IsSticky)
}

// SavePlayAreaPreset writes a preset to path as YAML.
func SavePlayAreaPreset(path string, preset PlayAreaPreset) error {
	data, err := yaml.Marshal(preset)
	if err != nil {
		return fmt.Errorf("config: marshal play area preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write play area preset %s: %w", path, err)
	}
	return nil
}

// LoadPlayAreaPreset reads and parses a preset from path.
func LoadPlayAreaPreset(path string) (PlayAreaPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlayAreaPreset{}, fmt.Errorf("config: read play area preset %s: %w", path, err)
	}
	var preset PlayAreaPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return PlayAreaPreset{}, fmt.Errorf("config: parse play area preset %s: %w", path, err)
	}
	return preset, nil
}
