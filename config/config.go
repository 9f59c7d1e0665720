// File: config/config.go
package config

import "time"

// Config holds the parameters a driver needs to stand up a simulated
// play area and step it: the manual tick cadence, the pool size, and
// the PlayArea preset balls are born into.
type Config struct {
	// Timing
	TickPeriod time.Duration `yaml:"tickPeriod"` // wall-clock period between manual steps

	// Pool
	PoolSize int `yaml:"poolSize"` // number of pre-allocated ball slots, [1, physics.MaxPoolSize]

	// Play area
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Elasticity       float64 `yaml:"elasticity"`
	ReflectingBorder bool    `yaml:"reflectingBorder"`
	IsSticky         bool    `yaml:"isSticky"`

	// Ball defaults
	DefaultBallMass   float64 `yaml:"defaultBallMass"`
	DefaultBallRadius float64 `yaml:"defaultBallRadius"`
	MinBallVelocity   float64 `yaml:"minBallVelocity"`
	MaxBallVelocity   float64 `yaml:"maxBallVelocity"`

	// Ask timeout for simactor request/response commands.
	AskTimeout time.Duration `yaml:"askTimeout"`
}

// Default returns the standard configuration: a 1024x1024 area, five
// ball slots, full elasticity, reflecting borders on, sticky mode off.
func Default() Config {
	canvasSize := 1024.0
	return Config{
		TickPeriod: 24 * time.Millisecond,

		PoolSize: 5,

		Width:            canvasSize,
		Height:           canvasSize,
		Elasticity:       1.0,
		ReflectingBorder: true,
		IsSticky:         false,

		DefaultBallMass:   1,
		DefaultBallRadius: canvasSize / 96, // ~10.67

		MinBallVelocity: canvasSize / 180,
		MaxBallVelocity: canvasSize / 90,

		AskTimeout: 250 * time.Millisecond,
	}
}

// Fast returns a configuration tuned for quick test iteration: a
// smaller area, a shorter tick period, and a tighter ask timeout.
func Fast() Config {
	cfg := Default()

	cfg.TickPeriod = 16 * time.Millisecond

	cfg.Width = 512
	cfg.Height = 512

	cfg.DefaultBallRadius = cfg.Width / 64 // 8
	cfg.MinBallVelocity = cfg.Width / 60
	cfg.MaxBallVelocity = cfg.Width / 40

	cfg.AskTimeout = 100 * time.Millisecond

	return cfg
}
