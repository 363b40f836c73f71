// Package lorentz provides Minkowski four-vector algebra and exact
// two-body scattering kinematics in the center-of-momentum frame.
//
// The vector type is generic over the floating-point representation so
// that kinematic configurations can be built in reduced precision
// without changing any call site.
package lorentz

import (
	"fmt"
	"io"
	"math"
)

// Float constrains the numeric representations a four-vector can carry.
type Float interface {
	float32 | float64
}

// FourVector is an energy-momentum four-vector (E, px, py, pz).
//
// All four components share the single numeric type T. Operations are
// value-to-value: no method mutates its receiver or operands.
type FourVector[T Float] struct {
	E  T // energy
	Px T // momentum along x
	Py T // momentum along y
	Pz T // momentum along z
}

// New builds a four-vector from its components.
func New[T Float](e, px, py, pz T) FourVector[T] {
	return FourVector[T]{E: e, Px: px, Py: py, Pz: pz}
}

// Add returns the componentwise sum v + o.
func (v FourVector[T]) Add(o FourVector[T]) FourVector[T] {
	return FourVector[T]{v.E + o.E, v.Px + o.Px, v.Py + o.Py, v.Pz + o.Pz}
}

// Sub returns the componentwise difference v - o.
func (v FourVector[T]) Sub(o FourVector[T]) FourVector[T] {
	return FourVector[T]{v.E - o.E, v.Px - o.Px, v.Py - o.Py, v.Pz - o.Pz}
}

// Scale returns v with every component multiplied by k.
func (v FourVector[T]) Scale(k T) FourVector[T] {
	return FourVector[T]{k * v.E, k * v.Px, k * v.Py, k * v.Pz}
}

// Dot returns the Minkowski inner product of v and o with the
// (+,-,-,-) signature. This is the invariant-producing operation:
// Dot(p, p) is the squared invariant mass of p.
func (v FourVector[T]) Dot(o FourVector[T]) T {
	return v.E*o.E - v.Px*o.Px - v.Py*o.Py - v.Pz*o.Pz
}

// M2 returns the squared invariant mass Dot(v, v).
func (v FourVector[T]) M2() T {
	return v.Dot(v)
}

// M returns the invariant mass of v, negative for spacelike vectors.
func (v FourVector[T]) M() T {
	m2 := v.M2()
	if m2 < 0 {
		return -T(math.Sqrt(float64(-m2)))
	}
	return T(math.Sqrt(float64(m2)))
}

// String returns the compact inline form with components rounded for
// display. Stored precision is never affected by formatting.
func (v FourVector[T]) String() string {
	return fmt.Sprintf("(%.6g %.6g %.6g %.6g)",
		float64(v.E), float64(v.Px), float64(v.Py), float64(v.Pz),
	)
}

// Format implements fmt.Formatter. The %v and %s verbs print the
// compact rounded form; %+v prints the labeled components at full
// precision.
func (v FourVector[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "FourVector{E: %v, Px: %v, Py: %v, Pz: %v}",
			v.E, v.Px, v.Py, v.Pz,
		)
	default:
		io.WriteString(f, v.String())
	}
}
