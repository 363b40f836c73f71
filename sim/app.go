package sim

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
)

// App starts and stops the optional CPU profile and execution trace
// configured for a binary.
type App struct {
	cfg Config

	fprof  *os.File
	ftrace *os.File
}

// NewApp returns an App for cfg.
func NewApp(cfg Config) *App {
	return &App{cfg: cfg}
}

// Start enables CPU profiling and tracing when the configuration asks
// for them. A started App must be stopped to flush the output files.
func (app *App) Start() error {
	if app.cfg.CPUProfile != "" {
		f, err := os.Create(app.cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("sim: create pprof output file [%s]: %w", app.cfg.CPUProfile, err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("sim: start CPU profile: %w", err)
		}
		app.fprof = f
	}

	if app.cfg.Trace != "" {
		f, err := os.Create(app.cfg.Trace)
		if err != nil {
			app.Stop()
			return fmt.Errorf("sim: create trace output file [%s]: %w", app.cfg.Trace, err)
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			app.Stop()
			return fmt.Errorf("sim: start tracer: %w", err)
		}
		app.ftrace = f
	}

	return nil
}

// Stop stops whatever Start enabled. Safe to call on a never-started
// or already-stopped App.
func (app *App) Stop() {
	if app.ftrace != nil {
		trace.Stop()
		app.ftrace.Close()
		app.ftrace = nil
	}
	if app.fprof != nil {
		pprof.StopCPUProfile()
		app.fprof.Close()
		app.fprof = nil
	}
}
