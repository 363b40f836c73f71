package sim_test

import (
	"testing"

	"github.com/hepex/mupair/sim"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MUPAIR_ENERGY", "250.5")
	t.Setenv("MUPAIR_NEVTS", "42")
	t.Setenv("MUPAIR_SEED", "-7")
	t.Setenv("MUPAIR_OUTPUT", "run.out")

	cfg := sim.DefaultConfig()
	if err := cfg.FromEnv(); err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.Energy != 250.5 {
		t.Errorf("Energy = %v, want 250.5", cfg.Energy)
	}
	if cfg.NEvents != 42 {
		t.Errorf("NEvents = %v, want 42", cfg.NEvents)
	}
	if cfg.Seed != -7 {
		t.Errorf("Seed = %v, want -7", cfg.Seed)
	}
	if cfg.Output != "run.out" {
		t.Errorf("Output = %q, want %q", cfg.Output, "run.out")
	}
	// untouched fields keep their defaults
	if cfg.Chunk != 1000 {
		t.Errorf("Chunk = %v, want default 1000", cfg.Chunk)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	if cfg.Energy <= 0 || cfg.NEvents <= 0 || cfg.Chunk <= 0 || cfg.Workers < 1 {
		t.Errorf("unusable defaults: %+v", cfg)
	}
}
