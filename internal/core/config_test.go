package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, want 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate <= 0 {
		t.Errorf("TickRate = %d, want positive", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0 so the platform layer picks a time seed", cfg.Seed)
	}
}
