// Package mupair generates unweighted Monte Carlo event samples for a
// 2->2 scattering process by flat phase-space sampling followed by
// acceptance-rejection against a per-energy weight bound.
//
// The physics of a concrete process (differential cross-section and its
// angular maximum) is injected through the Process interface; the
// package itself only knows how to sample, weight, unweight and batch.
package mupair

import "github.com/hepex/mupair/lorentz"

// Event is one sampled phase-space point at a fixed beam energy,
// together with the differential cross-section weight attached to it.
//
// An Event is a plain value record: all fields share the numeric type T
// and nothing is mutated after construction.
type Event[T lorentz.Float] struct {
	Energy   T // beam energy of each incoming particle
	CosTheta T // cosine of the polar scattering angle
	Phi      T // azimuthal angle, in radians
	Weight   T // differential cross-section at (Energy, CosTheta)
}
