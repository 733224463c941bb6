package domain

import (
	"math"
	"testing"
)

// TestPhaseRotation_ZeroPhase checks the phase-zero convention: at phase 0
// the matrix reduces to the fixed axis realignment, which maps the
// quadrature mu axis (local z) onto body x.
func TestPhaseRotation_ZeroPhase(t *testing.T) {
	m := PhaseRotation(0)

	want := Mat3{
		0, 0, 1,
		0, 1, 0,
		-1, 0, 0,
	}
	for i := range m {
		if math.Abs(m[i]-want[i]) > 1e-15 {
			t.Fatalf("element %d: expected %.1f, got %.15f", i, want[i], m[i])
		}
	}

	got := m.Apply([3]float64{0, 0, 1})
	if math.Abs(got[0]-1) > 1e-15 || math.Abs(got[1]) > 1e-15 || math.Abs(got[2]) > 1e-15 {
		t.Errorf("mu axis at phase 0: expected (1,0,0), got %v", got)
	}
}

// TestPhaseRotation_HalfPhase checks that half a rotation flips the mu axis
// to −x.
func TestPhaseRotation_HalfPhase(t *testing.T) {
	got := PhaseRotation(0.5).Apply([3]float64{0, 0, 1})

	if math.Abs(got[0]+1) > 1e-12 || math.Abs(got[1]) > 1e-12 || math.Abs(got[2]) > 1e-12 {
		t.Errorf("mu axis at phase 0.5: expected (-1,0,0), got %v", got)
	}
}

// TestPhaseRotation_Orthonormal checks RᵀR = I for a spread of phases.
func TestPhaseRotation_Orthonormal(t *testing.T) {
	for _, phase := range []float64{0, 0.13, 0.25, 0.5, 0.77, 1.0, -0.3} {
		m := PhaseRotation(phase)

		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				// Column r · column c.
				dot := m[r]*m[c] + m[3+r]*m[3+c] + m[6+r]*m[6+c]
				want := 0.0
				if r == c {
					want = 1.0
				}
				if math.Abs(dot-want) > 1e-12 {
					t.Fatalf("phase %.2f: columns %d·%d = %.15f, want %.1f", phase, r, c, dot, want)
				}
			}
		}
	}
}

// TestMat3_Apply_PreservesNorm checks that rotated quadrature directions stay
// on the unit sphere.
func TestMat3_Apply_PreservesNorm(t *testing.T) {
	g := DefaultQuadrature()
	m := PhaseRotation(0.37)

	for i := range g.MuCenters {
		for j := range g.PhiCenters {
			v := m.Apply(g.Direction(i, j))
			norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
			if math.Abs(norm-1.0) > 1e-12 {
				t.Fatalf("cell (%d,%d): rotated norm %.15f", i, j, norm)
			}
		}
	}
}

// TestPhaseRotation_FullTurn checks that phase 1 returns to phase 0.
func TestPhaseRotation_FullTurn(t *testing.T) {
	m0 := PhaseRotation(0)
	m1 := PhaseRotation(1)

	for i := range m0 {
		if math.Abs(m0[i]-m1[i]) > 1e-12 {
			t.Fatalf("element %d: phase 0 gives %.15f, phase 1 gives %.15f", i, m0[i], m1[i])
		}
	}
}
