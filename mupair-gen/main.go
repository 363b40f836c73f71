// mupair-gen generates unweighted e+e- -> mu+mu- events at a fixed
// beam energy and streams them to a binary record file.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hepex/mupair"
	"github.com/hepex/mupair/sim"
	"github.com/hepex/mupair/xsec"
)

func main() {
	log.SetPrefix("mupair-gen: ")
	log.SetFlags(0)

	cfg := sim.DefaultConfig()
	if err := cfg.FromEnv(); err != nil {
		log.Fatalf("error loading environment: %v", err)
	}

	flag.Float64Var(&cfg.Energy, "energy", cfg.Energy, "beam energy in MeV")
	flag.IntVar(&cfg.NEvents, "nevts", cfg.NEvents, "number of accepted events to generate")
	flag.IntVar(&cfg.Chunk, "chunk", cfg.Chunk, "number of flat samples per batch")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "master seed (0 selects a random seed)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of concurrent goroutines per batch")
	flag.IntVar(&cfg.MaxBatches, "max-batches", cfg.MaxBatches, "abort after this many batches (0: no cap)")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "path to output file to write")
	flag.StringVar(&cfg.CPUProfile, "cpu-profile", cfg.CPUProfile, "write a CPU profile to this file")
	flag.StringVar(&cfg.Trace, "trace", cfg.Trace, "write an execution trace to this file")
	flag.Parse()

	if cfg.Seed == 0 {
		seed, err := mupair.NewSeed()
		if err != nil {
			log.Fatalf("error seeding run: %v", err)
		}
		cfg.Seed = seed
	}

	app := sim.NewApp(cfg)
	if err := app.Start(); err != nil {
		log.Fatalf("error starting harness: %v", err)
	}
	defer app.Stop()

	proc := xsec.MuonPair[float64]{}
	gen, err := mupair.New(mupair.Config[float64]{
		Energy:     cfg.Energy,
		Process:    proc,
		Seed:       cfg.Seed,
		Workers:    cfg.Workers,
		MaxBatches: cfg.MaxBatches,
	})
	if err != nil {
		log.Fatalf("error creating generator: %v", err)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatalf("error creating output file [%s]: %v", cfg.Output, err)
	}

	errc := make(chan error)
	results := make(chan mupair.Event[float64])
	go writeEvents(f, results, errc)

	log.Printf("E=%v MeV seed=%d target=%d chunk=%d workers=%d",
		cfg.Energy, cfg.Seed, cfg.NEvents, cfg.Chunk, cfg.Workers,
	)

	nout := 0
	for ev := range gen.Events(cfg.Chunk) {
		results <- ev
		if err := <-errc; err != nil {
			log.Fatalf("error: %v", err)
		}
		nout++
		if nout == cfg.NEvents {
			break
		}
	}
	close(results)
	if err := <-errc; err != nil {
		log.Fatalf("error closing output file [%s]: %v", cfg.Output, err)
	}

	if nout < cfg.NEvents {
		log.Fatalf("error: only %d of %d events generated after %d batches",
			nout, cfg.NEvents, gen.Stats().Batches,
		)
	}

	stats := gen.Stats()
	log.Printf("generated %d events (%d sampled, efficiency %.4f)",
		nout, stats.Sampled, stats.Efficiency(),
	)
	log.Printf("total cross-section: %.4f nb", proc.TotalXSec(cfg.Energy))
}

func writeEvents(f *os.File, input <-chan mupair.Event[float64], errc chan<- error) {
	w := sim.NewEventWriter(f)
	for ev := range input {
		errc <- w.Write(ev)
	}
	errc <- w.Close()
}
