// mupair-ana reads a generated event stream, rebuilds the final-state
// four-vectors of each event and plots the resulting distributions.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"path/filepath"

	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/vg"

	"github.com/hepex/mupair/sim"
	"github.com/hepex/mupair/xsec"
)

var (
	fname = flag.String("i", "mupair.out", "path to event file to read")
	odir  = flag.String("o", ".", "directory to write plots into")
)

func main() {
	log.SetPrefix("mupair-ana: ")
	log.SetFlags(0)
	flag.Parse()

	f, err := os.Open(*fname)
	if err != nil {
		log.Fatalf("error opening event file [%s]: %v", *fname, err)
	}
	defer f.Close()

	evs, err := sim.ReadAllEvents(f)
	if err != nil {
		log.Fatalf("error reading events from [%s]: %v", *fname, err)
	}
	if len(evs) == 0 {
		log.Fatalf("no events in [%s]", *fname)
	}

	var (
		proc = xsec.MuonPair[float64]{}

		hcos  = hbook.NewH1D(50, -1, 1)
		hphi  = hbook.NewH1D(50, 0, 2*math.Pi)
		hmass = hbook.NewH1D(100, 0, 2.5*evs[0].Energy)

		cosv = make([]float64, 0, len(evs))
	)

	for i, ev := range evs {
		parts, err := proc.Particles(ev.Energy, ev.CosTheta, ev.Phi)
		if err != nil {
			log.Fatalf("error rebuilding kinematics of event #%d: %v", i, err)
		}
		mum := asP4(parts["mu-"].E, parts["mu-"].Px, parts["mu-"].Py, parts["mu-"].Pz)
		mup := asP4(parts["mu+"].E, parts["mu+"].Px, parts["mu+"].Py, parts["mu+"].Pz)

		// events are unweighted: fill with unit weight
		hcos.Fill(ev.CosTheta, 1)
		hphi.Fill(ev.Phi, 1)
		hmass.Fill(fmom.InvMass(&mum, &mup), 1)

		cosv = append(cosv, ev.CosTheta)
	}

	log.Printf("read %d events from [%s]", len(evs), *fname)
	log.Printf("mean cos(theta) = %+.4f", stat.Mean(cosv, nil))
	log.Printf("mean m(mu+mu-)  = %.2f MeV", hmass.XMean())

	for _, plot := range []struct {
		name  string
		title string
		xlab  string
		h     *hbook.H1D
	}{
		{"cos_theta.png", "Polar angle", "cos(theta)", hcos},
		{"phi.png", "Azimuthal angle", "phi [rad]", hphi},
		{"mass.png", "Dimuon invariant mass", "m(mu+mu-) [MeV]", hmass},
	} {
		fname := filepath.Join(*odir, plot.name)
		if err := save(fname, plot.title, plot.xlab, plot.h); err != nil {
			log.Fatalf("error saving plot [%s]: %v", fname, err)
		}
		log.Printf("wrote %s", fname)
	}
}

func asP4(e, px, py, pz float64) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(px, py, pz, e)
}

func save(fname, title, xlabel string, h *hbook.H1D) error {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "events"
	p.Add(hplot.NewH1D(h))
	return p.Save(6*vg.Inch, -1, fname)
}
