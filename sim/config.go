// Package sim carries the application-side harness shared by the
// mupair binaries: environment-backed configuration, profiling and
// tracing hooks, and the on-disk event record format.
package sim

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the knobs common to the mupair binaries. Environment
// variables seed the values; the binaries then bind flags on top, so
// flags win over the environment.
type Config struct {
	Energy     float64 `env:"MUPAIR_ENERGY"`
	NEvents    int     `env:"MUPAIR_NEVTS"`
	Chunk      int     `env:"MUPAIR_CHUNK"`
	Seed       int64   `env:"MUPAIR_SEED"`
	Workers    int     `env:"MUPAIR_WORKERS"`
	MaxBatches int     `env:"MUPAIR_MAX_BATCHES"`
	Output     string  `env:"MUPAIR_OUTPUT"`

	CPUProfile string `env:"MUPAIR_CPU_PROFILE"`
	Trace      string `env:"MUPAIR_TRACE"`
}

// DefaultConfig returns the built-in defaults: a 1 GeV beam, 10k
// events in chunks of 1000, single worker, unbounded batching.
func DefaultConfig() Config {
	return Config{
		Energy:  1000,
		NEvents: 10000,
		Chunk:   1000,
		Workers: 1,
		Output:  "mupair.out",
	}
}

// FromEnv overlays MUPAIR_* environment variables onto cfg.
func (cfg *Config) FromEnv() error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("sim: parse env: %w", err)
	}
	return nil
}
