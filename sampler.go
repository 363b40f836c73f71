package mupair

import (
	"math"
	"math/rand"

	"github.com/hepex/mupair/lorentz"
)

// Uniform draws a value in [0, 1) at the precision of T. A float32
// instantiation consumes a single-precision draw, so reduced-precision
// sampling keeps the same algorithm shape.
func Uniform[T lorentz.Float](rng *rand.Rand) T {
	var t T
	switch any(t).(type) {
	case float32:
		return T(rng.Float32())
	default:
		return T(rng.Float64())
	}
}

// UniformIn draws a value in [lo, hi) at the precision of T.
func UniformIn[T lorentz.Float](rng *rand.Rand, lo, hi T) T {
	return lo + Uniform[T](rng)*(hi-lo)
}

// sample draws one flat phase-space point from rng: cos(theta) uniform
// in [-1, 1), phi uniform in [0, 2pi), with the cross-section weight
// attached. Flat here means uniform in the sampling variables, not in
// solid angle; the weight carries the physics.
func (g *Generator[T]) sample(rng *rand.Rand) Event[T] {
	cosTheta := UniformIn[T](rng, -1, 1)
	phi := UniformIn[T](rng, 0, 2*math.Pi)
	return Event[T]{
		Energy:   g.cfg.Energy,
		CosTheta: cosTheta,
		Phi:      phi,
		Weight:   g.cfg.Process.DiffXSec(g.cfg.Energy, cosTheta),
	}
}

// Sample draws one flat phase-space event at the generator's energy,
// using the generator's sequential random stream.
func (g *Generator[T]) Sample() Event[T] {
	return g.sample(g.rng)
}
