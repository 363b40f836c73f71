// mupair-scan measures the flat-sampling acceptance efficiency of the
// e+e- -> mu+mu- generator over an energy range and compares it with
// the mean-weight prediction, alongside the integrated cross-section.
package main

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/hepex/mupair"
	"github.com/hepex/mupair/xsec"
)

var (
	emin   = flag.Float64("emin", 200, "lowest beam energy in MeV")
	emax   = flag.Float64("emax", 2000, "highest beam energy in MeV")
	npts   = flag.Int("n", 10, "number of energy points")
	nevts  = flag.Int("nevts", 20000, "number of flat samples per energy point")
	seed   = flag.Int64("seed", 1, "master seed of the scan")
	nprocs = flag.Int("nprocs", 4, "number of concurrent energy points")
)

type point struct {
	energy   float64
	accepted float64 // empirical acceptance rate
	expected float64 // mean(weight)/wmax
	sigma    float64 // integrated cross-section, in nb
}

func main() {
	log.SetPrefix("mupair-scan: ")
	log.SetFlags(0)
	flag.Parse()

	if *npts < 1 {
		log.Fatalf("invalid number of energy points %d", *npts)
	}

	var (
		proc = xsec.MuonPair[float64]{}
		pts  = make([]point, *npts)

		wg  sync.WaitGroup
		sem = make(chan struct{}, *nprocs)
	)

	for i := range pts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			e := *emin
			if *npts > 1 {
				e += (*emax - *emin) * float64(i) / float64(*npts-1)
			}
			pt, err := scan(proc, e, *nevts, *seed+int64(i))
			if err != nil {
				log.Fatalf("error scanning E=%v MeV: %v", e, err)
			}
			pts[i] = pt
		}(i)
	}
	wg.Wait()

	fmt.Printf("# %10s %12s %12s %12s\n", "E [MeV]", "acc", "<w>/wmax", "sigma [nb]")
	for _, pt := range pts {
		fmt.Printf("  %10.2f %12.5f %12.5f %12.4f\n",
			pt.energy, pt.accepted, pt.expected, pt.sigma,
		)
	}
}

// scan draws nevts flat samples at beam energy e and measures how many
// survive the rejection step.
func scan(proc xsec.MuonPair[float64], e float64, nevts int, seed int64) (point, error) {
	gen, err := mupair.New(mupair.Config[float64]{
		Energy:  e,
		Process: proc,
		Seed:    seed,
	})
	if err != nil {
		return point{}, fmt.Errorf("creating generator: %w", err)
	}

	var (
		ws  = make([]float64, nevts)
		acc = 0
	)
	for i := range ws {
		ev, ok := gen.SampleAndAccept()
		ws[i] = ev.Weight
		if ok {
			acc++
		}
	}

	return point{
		energy:   e,
		accepted: float64(acc) / float64(nevts),
		expected: stat.Mean(ws, nil) / proc.MaxWeight(e),
		sigma:    proc.TotalXSec(e),
	}, nil
}
