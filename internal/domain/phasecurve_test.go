package domain

import (
	"errors"
	"math"
	"testing"
)

// constantField returns the same intensity vector at every direction.
type constantField struct {
	value []float64
}

func (f constantField) At(_ [3]float64) []float64 { return f.value }

// directionalField returns an intensity vector that varies with the body-x
// component of the query direction, so flux depends on phase.
type directionalField struct {
	nOut int
}

func (f directionalField) At(dir [3]float64) []float64 {
	out := make([]float64, f.nOut)
	for i := range out {
		out[i] = 1.0 + 0.5*dir[0]
	}
	return out
}

// uniformSamples builds a valid flattened sample set: nPoints surface points,
// nLambda channels, the given mus, intensity 1 everywhere.
func uniformSamples(nPoints, nLambda int, mus []float64) SampleSet {
	lon := make([]float64, nPoints)
	lat := make([]float64, nPoints)
	for i := range lon {
		lon[i] = -180 + 360*float64(i)/float64(nPoints)
		lat[i] = -60 + 120*float64(i)/float64(nPoints)
	}
	intensity := make([]float64, nPoints*nLambda*len(mus))
	for i := range intensity {
		intensity[i] = 1.0
	}
	return SampleSet{
		Lon:       Vector(lon),
		Lat:       Vector(lat),
		Mus:       mus,
		Intensity: Array{Shape: []int{nPoints, nLambda, len(mus)}, Data: intensity},
	}
}

func constantBuilder(points [][3]float64, values [][]float64) (IntensityField, error) {
	return constantField{value: values[0]}, nil
}

// TestComputePhaseCurve_OutputShape checks row and column counts match the
// phase list and the intensity wavelength dimension.
func TestComputePhaseCurve_OutputShape(t *testing.T) {
	samples := uniformSamples(8, 3, []float64{0.1, 0.5, 0.9})
	phases := []float64{0, 0.2, 0.4, 0.6, 0.8}

	curve, err := ComputePhaseCurve(phases, samples, constantBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(curve) != len(phases) {
		t.Fatalf("expected %d rows, got %d", len(phases), len(curve))
	}
	for i, row := range curve {
		if len(row) != 3 {
			t.Fatalf("row %d: expected 3 channels, got %d", i, len(row))
		}
	}
}

// TestComputePhaseCurve_IsotropicInvariance checks that a constant field
// yields the same flux at every phase, equal to the hemisphere constant.
func TestComputePhaseCurve_IsotropicInvariance(t *testing.T) {
	samples := uniformSamples(8, 2, []float64{0.1, 0.5, 0.9})

	curve, err := ComputePhaseCurve(nil, samples, constantBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(curve) != 11 {
		t.Fatalf("expected 11 default phases, got %d rows", len(curve))
	}

	want := DefaultQuadrature().HemisphereConstant()
	for i, row := range curve {
		for c, got := range row {
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("phase %d channel %d: expected %.12f, got %.12f", i, c, want, got)
			}
		}
	}
}

// TestComputePhaseCurve_PhaseOrdering checks that swapping two input phases
// swaps exactly the corresponding output rows.
func TestComputePhaseCurve_PhaseOrdering(t *testing.T) {
	samples := uniformSamples(8, 2, []float64{0.1, 0.5, 0.9})
	build := func(_ [][3]float64, _ [][]float64) (IntensityField, error) {
		return directionalField{nOut: 2 * 3}, nil
	}

	a, err := ComputePhaseCurve([]float64{0.1, 0.3, 0.6}, samples, build)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ComputePhaseCurve([]float64{0.6, 0.3, 0.1}, samples, build)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pairs := [][2]int{{0, 2}, {1, 1}, {2, 0}}
	for _, p := range pairs {
		for c := range a[p[0]] {
			if math.Abs(a[p[0]][c]-b[p[1]][c]) > 1e-12 {
				t.Errorf("row %d/%d channel %d: %.12f != %.12f", p[0], p[1], c, a[p[0]][c], b[p[1]][c])
			}
		}
	}

	// The field is phase-dependent, so distinct phases must differ.
	if math.Abs(a[0][0]-a[2][0]) < 1e-9 {
		t.Errorf("expected phase 0.1 and 0.6 fluxes to differ, both %.12f", a[0][0])
	}
}

// TestComputePhaseCurve_ShapeErrors checks rank validation on every input.
func TestComputePhaseCurve_ShapeErrors(t *testing.T) {
	valid := uniformSamples(4, 2, []float64{0.2, 0.8})

	rank3 := Array{Shape: []int{2, 2, 1}, Data: make([]float64, 4)}
	rank2 := Array{Shape: []int{2, 2}, Data: make([]float64, 4)}
	rank5 := Array{Shape: []int{1, 1, 4, 2, 2}, Data: make([]float64, 16)}

	tests := []struct {
		name   string
		mutate func(*SampleSet)
	}{
		{"lon rank 3", func(s *SampleSet) { s.Lon = rank3 }},
		{"lat rank 3", func(s *SampleSet) { s.Lat = rank3 }},
		{"lon rank 0", func(s *SampleSet) { s.Lon = Array{} }},
		{"intensity rank 2", func(s *SampleSet) { s.Intensity = rank2 }},
		{"intensity rank 5", func(s *SampleSet) { s.Intensity = rank5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := valid
			tt.mutate(&samples)

			_, err := ComputePhaseCurve(nil, samples, constantBuilder)
			if err == nil {
				t.Fatal("expected InvalidShapeError, got nil")
			}
			var shapeErr *InvalidShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected InvalidShapeError, got %v", err)
			}
		})
	}
}

// TestComputePhaseCurve_InconsistentSizes checks cross-array consistency.
func TestComputePhaseCurve_InconsistentSizes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SampleSet)
	}{
		{"lat shorter than lon", func(s *SampleSet) { s.Lat = Vector(make([]float64, 3)) }},
		{"intensity point mismatch", func(s *SampleSet) {
			s.Intensity = Array{Shape: []int{5, 2, 2}, Data: make([]float64, 20)}
		}},
		{"mus length mismatch", func(s *SampleSet) { s.Mus = []float64{0.2, 0.5, 0.8} }},
		{"non-monotonic mus", func(s *SampleSet) { s.Mus = []float64{0.8, 0.2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := uniformSamples(4, 2, []float64{0.2, 0.8})
			tt.mutate(&samples)

			_, err := ComputePhaseCurve(nil, samples, constantBuilder)
			if err == nil {
				t.Fatal("expected InvalidInputError, got nil")
			}
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
		})
	}
}

// TestComputePhaseCurve_GridShapes checks that rank-2 coordinates with a
// rank-4 intensity tensor flatten consistently.
func TestComputePhaseCurve_GridShapes(t *testing.T) {
	const d1, d2, nLambda = 3, 4, 2
	mus := []float64{0.2, 0.8}

	lon := make([]float64, d1*d2)
	lat := make([]float64, d1*d2)
	for i := range lon {
		lon[i] = float64(i%d2)*30 - 45
		lat[i] = float64(i/d2)*30 - 30
	}
	intensity := make([]float64, d1*d2*nLambda*len(mus))
	for i := range intensity {
		intensity[i] = 1.0
	}

	samples := SampleSet{
		Lon:       Array{Shape: []int{d1, d2}, Data: lon},
		Lat:       Array{Shape: []int{d1, d2}, Data: lat},
		Mus:       mus,
		Intensity: Array{Shape: []int{d1, d2, nLambda, len(mus)}, Data: intensity},
	}

	curve, err := ComputePhaseCurve([]float64{0, 0.5}, samples, constantBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultQuadrature().HemisphereConstant()
	for i, row := range curve {
		for c, got := range row {
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("phase %d channel %d: expected %.12f, got %.12f", i, c, want, got)
			}
		}
	}
}
