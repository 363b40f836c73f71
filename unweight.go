package mupair

import "math/rand"

// accept runs the rejection step for ev: draw u uniform in [0, 1) and
// keep the event iff its weight is at least u times the weight bound.
// The acceptance probability is then Weight/MaxWeight, so accepted
// events follow the differential cross-section instead of the flat
// sampling density.
//
// Correctness rests on MaxWeight truly bounding DiffXSec over all
// angles at this energy; an understated bound silently biases the
// sample and cannot be detected here.
func (g *Generator[T]) accept(rng *rand.Rand, ev Event[T]) bool {
	wmax := g.cfg.Process.MaxWeight(g.cfg.Energy)
	return ev.Weight >= Uniform[T](rng)*wmax
}

// Accept runs the rejection step for ev using the generator's
// sequential random stream.
func (g *Generator[T]) Accept(ev Event[T]) bool {
	return g.accept(g.rng, ev)
}

// SampleAndAccept draws one flat event and runs the rejection step on
// it, reporting whether the event survived.
func (g *Generator[T]) SampleAndAccept() (Event[T], bool) {
	ev := g.Sample()
	return ev, g.Accept(ev)
}

// sampleAccept is the per-event unit of work of the batched driver:
// three uniform draws from rng (two angles, one rejection draw), no
// state shared with any other event.
func (g *Generator[T]) sampleAccept(rng *rand.Rand) (Event[T], bool) {
	ev := g.sample(rng)
	return ev, g.accept(rng, ev)
}
