package lorentz

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain reports kinematic inputs outside the physical domain.
var ErrDomain = errors.New("lorentz: domain error")

// Rho returns the momentum magnitude sqrt(e^2 - m^2) of an on-shell
// particle of mass m and energy e. It returns a domain error carrying
// both inputs when e < m instead of producing a NaN.
func Rho[T Float](e, m T) (T, error) {
	if e < m {
		return 0, fmt.Errorf("lorentz: energy %v below mass %v: %w", e, m, ErrDomain)
	}
	return T(math.Sqrt(float64(e*e - m*m))), nil
}

// Kinematics is the exact four-vector configuration of a 2->2
// scattering in the center-of-momentum frame: incoming pair InA/InB,
// outgoing pair OutC/OutD.
//
// Conservation holds by construction: OutD is derived as
// InA + InB - OutC, so the incoming and outgoing sums agree
// componentwise up to rounding.
type Kinematics[T Float] struct {
	InA  FourVector[T]
	InB  FourVector[T]
	OutC FourVector[T]
	OutD FourVector[T]
}

// NewKinematics builds the configuration for beam energy e, cosine of
// the polar scattering angle cosTheta and azimuthal angle phi, with
// incoming-particle mass mIn and outgoing-particle mass mOut.
//
// The incoming pair travels back-to-back along z with momentum
// Rho(e, mIn); each outgoing particle carries energy e as well, the
// elastic-equal-energy configuration of the frame. cosTheta must lie
// in [-1, 1] and e must be at least both masses; violations return a
// domain error. phi may be any real value, only its sine and cosine
// enter.
func NewKinematics[T Float](e, cosTheta, phi, mIn, mOut T) (Kinematics[T], error) {
	if cosTheta < -1 || cosTheta > 1 {
		return Kinematics[T]{}, fmt.Errorf("lorentz: cos(theta)=%v outside [-1,1]: %w", cosTheta, ErrDomain)
	}
	rhoIn, err := Rho(e, mIn)
	if err != nil {
		return Kinematics[T]{}, fmt.Errorf("lorentz: incoming momentum: %w", err)
	}
	rhoOut, err := Rho(e, mOut)
	if err != nil {
		return Kinematics[T]{}, fmt.Errorf("lorentz: outgoing momentum: %w", err)
	}

	sinTheta := T(math.Sqrt(float64(1 - cosTheta*cosTheta)))
	sinPhi, cosPhi := math.Sincos(float64(phi))

	a := New(e, 0, 0, +rhoIn)
	b := New(e, 0, 0, -rhoIn)
	c := New(e,
		rhoOut*sinTheta*T(cosPhi),
		rhoOut*sinTheta*T(sinPhi),
		rhoOut*cosTheta,
	)
	d := a.Add(b).Sub(c)

	return Kinematics[T]{InA: a, InB: b, OutC: c, OutD: d}, nil
}
