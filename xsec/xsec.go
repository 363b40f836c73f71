// Package xsec implements the physics collaborators for the
// electron-positron annihilation into a muon pair: particle masses,
// the leading-order QED differential cross-section, its angular
// maximum, the integrated cross-section, and the labeled kinematic
// configuration of the process.
//
// Energies and masses are in MeV, natural units; densities are in
// MeV^-2 and integrated cross-sections in nanobarn.
package xsec

import (
	"math"

	"github.com/hepex/mupair/lorentz"
)

// Physical constants (PDG 2024).
const (
	ElectronMass = 0.51099895000 // in MeV
	MuonMass     = 105.6583755   // in MeV
	Alpha        = 1.0 / 137.035999084

	hbarc2 = 3.8937937194e11 // (hbar*c)^2 in MeV^2*nb
)

// MuonPair is the process e+ e- -> mu+ mu- at leading order in QED,
// with both lepton masses kept. Its methods satisfy the generator's
// Process capability.
type MuonPair[T lorentz.Float] struct{}

// DiffXSec returns the differential cross-section d(sigma)/d(Omega)
// at beam energy e and scattering-angle cosine cosTheta, in MeV^-2.
// Below the muon production threshold the process is closed and the
// density is zero.
func (MuonPair[T]) DiffXSec(e, cosTheta T) T {
	if e <= MuonMass {
		return 0
	}
	rhoE := T(math.Sqrt(float64(e*e - ElectronMass*ElectronMass)))
	rhoMu := T(math.Sqrt(float64(e*e - MuonMass*MuonMass)))
	s := 4 * e * e
	msq := T(MuonMass*MuonMass) / (e * e) // (m_mu/E)^2
	beta2 := 1 - msq                      // squared muon velocity
	return T(Alpha*Alpha) / (4 * s) * (rhoMu / rhoE) *
		(1 + msq + beta2*cosTheta*cosTheta)
}

// MaxWeight returns the exact angular maximum of DiffXSec(e, .): the
// density is even in cosTheta and increasing in its square, so the
// maximum sits at cosTheta = +-1.
func (p MuonPair[T]) MaxWeight(e T) T {
	return p.DiffXSec(e, 1)
}

// TotalXSec returns the integrated cross-section at beam energy e, in
// nanobarn. In the ultrarelativistic limit this approaches the classic
// 4*pi*alpha^2/(3s), about 86.8 nb*GeV^2/s.
func (MuonPair[T]) TotalXSec(e T) T {
	if e <= MuonMass {
		return 0
	}
	rhoE := T(math.Sqrt(float64(e*e - ElectronMass*ElectronMass)))
	rhoMu := T(math.Sqrt(float64(e*e - MuonMass*MuonMass)))
	s := 4 * e * e
	msq := T(MuonMass*MuonMass) / (e * e)
	beta2 := 1 - msq
	return T(math.Pi) * T(Alpha*Alpha) / s * (rhoMu / rhoE) *
		(1 + msq + beta2/3) * T(hbarc2)
}

// Kinematics returns the exact four-vector configuration of the
// process for the given beam energy and angles.
func (MuonPair[T]) Kinematics(e, cosTheta, phi T) (lorentz.Kinematics[T], error) {
	return lorentz.NewKinematics(e, cosTheta, phi, T(ElectronMass), T(MuonMass))
}

// Particles returns the four vectors of the configuration keyed by
// particle name: "e-", "e+", "mu-", "mu+".
func (p MuonPair[T]) Particles(e, cosTheta, phi T) (map[string]lorentz.FourVector[T], error) {
	kin, err := p.Kinematics(e, cosTheta, phi)
	if err != nil {
		return nil, err
	}
	return map[string]lorentz.FourVector[T]{
		"e-":  kin.InA,
		"e+":  kin.InB,
		"mu-": kin.OutC,
		"mu+": kin.OutD,
	}, nil
}
