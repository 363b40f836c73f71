package lorentz_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hepex/mupair/lorentz"
)

func randVec(rng *rand.Rand) lorentz.FourVector[float64] {
	return lorentz.New(
		rng.Float64()*2000,
		rng.Float64()*200-100,
		rng.Float64()*200-100,
		rng.Float64()*200-100,
	)
}

func TestDotSignature(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    lorentz.FourVector[float64]
		want float64
	}{
		{"timelike-unit", lorentz.New[float64](1, 0, 0, 0), 1},
		{"spacelike-x", lorentz.New[float64](0, 1, 0, 0), -1},
		{"spacelike-y", lorentz.New[float64](0, 0, 1, 0), -1},
		{"spacelike-z", lorentz.New[float64](0, 0, 0, 1), -1},
		{"lightlike", lorentz.New[float64](5, 0, 0, 5), 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Dot(tc.v); got != tc.want {
				t.Errorf("Dot(%v, %v) = %v, want %v", tc.v, tc.v, got, tc.want)
			}
		})
	}
}

func TestVectorSpaceLaws(t *testing.T) {
	const tol = 1e-9
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := randVec(rng)
		b := randVec(rng)
		c := randVec(rng)
		k := rng.Float64()*4 - 2

		if got, want := a.Add(b), b.Add(a); !eq(got, want, tol) {
			t.Fatalf("commutativity: %v != %v", got, want)
		}
		if got, want := a.Add(b).Add(c), a.Add(b.Add(c)); !eq(got, want, tol) {
			t.Fatalf("associativity: %v != %v", got, want)
		}
		if got, want := a.Add(b).Scale(k), a.Scale(k).Add(b.Scale(k)); !eq(got, want, tol) {
			t.Fatalf("distributivity: %v != %v", got, want)
		}
		if got, want := a.Sub(b), a.Add(b.Scale(-1)); !eq(got, want, tol) {
			t.Fatalf("subtraction: %v != %v", got, want)
		}
	}
}

func TestImmutability(t *testing.T) {
	a := lorentz.New[float64](10, 1, 2, 3)
	b := lorentz.New[float64](20, 4, 5, 6)
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Scale(7)
	if a != lorentz.New[float64](10, 1, 2, 3) || b != lorentz.New[float64](20, 4, 5, 6) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestAgainstFmom(t *testing.T) {
	const tol = 1e-9
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		e := 500 + rng.Float64()*1500
		px := rng.Float64()*200 - 100
		py := rng.Float64()*200 - 100
		pz := rng.Float64()*200 - 100

		v := lorentz.New(e, px, py, pz)
		ref := fmom.NewPxPyPzE(px, py, pz, e)

		if got, want := v.M2(), ref.M2(); !scalar.EqualWithinAbs(got, want, tol) {
			t.Errorf("M2 = %v, fmom reference %v", got, want)
		}
		if got, want := v.M(), ref.M(); !scalar.EqualWithinAbs(got, want, tol) {
			t.Errorf("M = %v, fmom reference %v", got, want)
		}
	}
}

func TestSpacelikeMassIsNegative(t *testing.T) {
	v := lorentz.New[float64](1, 0, 0, 5)
	if got := v.M(); got >= 0 {
		t.Errorf("M of spacelike vector = %v, want negative", got)
	}
}

func TestFormat(t *testing.T) {
	v := lorentz.New(1000.0, 0.0, 0.0, 999.999869440028)

	compact := fmt.Sprintf("%v", v)
	if want := "(1000 0 0 1000)"; compact != want {
		t.Errorf("compact form = %q, want %q", compact, want)
	}

	verbose := fmt.Sprintf("%+v", v)
	for _, frag := range []string{"E: 1000", "Px: 0", "Py: 0", "Pz: 999.999869440028"} {
		if !strings.Contains(verbose, frag) {
			t.Errorf("verbose form %q misses %q", verbose, frag)
		}
	}

	// display rounding must not touch the stored value
	if v.Pz != 999.999869440028 {
		t.Errorf("formatting altered stored component: %v", v.Pz)
	}
}

func TestFloat32Instantiation(t *testing.T) {
	a := lorentz.New[float32](10, 1, 2, 3)
	b := lorentz.New[float32](20, 3, 2, 1)
	sum := a.Add(b)
	if sum != lorentz.New[float32](30, 4, 4, 4) {
		t.Errorf("float32 Add = %v", sum)
	}
	var _ float32 = sum.Dot(sum)

	// untyped integer literals convert exactly into the float component type
	c := lorentz.New[float64](1000, 0, 0, 999)
	if c.E != 1000.0 || c.Pz != 999.0 {
		t.Errorf("integer literal conversion: %+v", c)
	}
}

func eq(a, b lorentz.FourVector[float64], tol float64) bool {
	return scalar.EqualWithinAbs(a.E, b.E, tol) &&
		scalar.EqualWithinAbs(a.Px, b.Px, tol) &&
		scalar.EqualWithinAbs(a.Py, b.Py, tol) &&
		scalar.EqualWithinAbs(a.Pz, b.Pz, tol)
}
