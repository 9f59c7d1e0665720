// File: config/config_test.go
package config

import "testing"

func TestDefaultConfigIsInternallyConsistent(t *testing.T) {
	cfg := Default()
	if cfg.PoolSize < 1 || cfg.PoolSize > 5 {
		t.Errorf("PoolSize = %d, want in [1,5]", cfg.PoolSize)
	}
	if cfg.MinBallVelocity >= cfg.MaxBallVelocity {
		t.Errorf("MinBallVelocity %v should be < MaxBallVelocity %v", cfg.MinBallVelocity, cfg.MaxBallVelocity)
	}
	if cfg.Elasticity < 0 || cfg.Elasticity > 1 {
		t.Errorf("Elasticity = %v, want in [0,1]", cfg.Elasticity)
	}
}

func TestFastConfigIsFasterThanDefault(t *testing.T) {
	def := Default()
	fast := Fast()
	if fast.TickPeriod >= def.TickPeriod {
		t.Errorf("Fast().TickPeriod = %v, want shorter than Default().TickPeriod = %v", fast.TickPeriod, def.TickPeriod)
	}
	if fast.AskTimeout >= def.AskTimeout {
		t.Errorf("Fast().AskTimeout = %v, want shorter than Default().AskTimeout = %v", fast.AskTimeout, def.AskTimeout)
	}
}
