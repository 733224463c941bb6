package domain

// SampleSet holds the scattered surface-intensity samples of one body.
//
// Lon and Lat may be rank 1 (pre-flattened, length M) or rank 2 (M1×M2,
// flattened row-major internally). Intensity may be rank 3
// (M, wavelengths, mu-bins) or rank 4 (M1, M2, wavelengths, mu-bins) and
// must agree with the coordinate arrays in the number of surface points.
// Mus lists the emission-angle cosines of the intensity's last dimension and
// must be strictly increasing.
type SampleSet struct {
	Lon       Array
	Lat       Array
	Mus       []float64
	Intensity Array
}

// DefaultPhases returns 11 evenly spaced phases covering one rotation.
func DefaultPhases() []float64 {
	phases := make([]float64, 11)
	for i := range phases {
		phases[i] = float64(i) / 10.0
	}
	return phases
}

// normalized is the canonical flattened form of a SampleSet: the engine
// itself is shape-monomorphic and only ever sees this.
type normalized struct {
	lon, lat []float64
	values   [][]float64 // per point, wavelength-major over mu bins
	nLambda  int
	nMu      int
}

// normalizeSamples validates ranks and cross-array consistency and reduces
// the sample set to its flattened form. Fails fast with InvalidShapeError or
// InvalidInputError; no partial result escapes.
func normalizeSamples(s SampleSet) (*normalized, error) {
	if s.Lon.Rank() != 1 && s.Lon.Rank() != 2 {
		return nil, &InvalidShapeError{Name: "lon", Shape: s.Lon.Shape, Want: "rank 1 or 2"}
	}
	if s.Lat.Rank() != 1 && s.Lat.Rank() != 2 {
		return nil, &InvalidShapeError{Name: "lat", Shape: s.Lat.Shape, Want: "rank 1 or 2"}
	}
	if s.Lon.Size() != s.Lat.Size() {
		return nil, &InvalidInputError{
			Reason: "lon and lat must have the same number of surface points",
		}
	}

	var nLambda, nMu int
	switch s.Intensity.Rank() {
	case 3:
		nLambda, nMu = s.Intensity.Shape[1], s.Intensity.Shape[2]
		if s.Intensity.Shape[0] != s.Lon.Size() {
			return nil, &InvalidInputError{
				Reason: "intensity point dimension does not match lon/lat",
			}
		}
	case 4:
		nLambda, nMu = s.Intensity.Shape[2], s.Intensity.Shape[3]
		if s.Intensity.Shape[0]*s.Intensity.Shape[1] != s.Lon.Size() {
			return nil, &InvalidInputError{
				Reason: "intensity grid dimensions do not match lon/lat",
			}
		}
	default:
		return nil, &InvalidShapeError{
			Name: "intensity", Shape: s.Intensity.Shape,
			Want: "rank 3 (points, wavelengths, mus) or rank 4 (d1, d2, wavelengths, mus)",
		}
	}

	if len(s.Mus) != nMu {
		return nil, &InvalidInputError{
			Reason: "mus length does not match the intensity mu dimension",
		}
	}

	nPoints := s.Lon.Size()
	stride := nLambda * nMu
	values := make([][]float64, nPoints)
	for p := 0; p < nPoints; p++ {
		values[p] = s.Intensity.Data[p*stride : (p+1)*stride]
	}

	return &normalized{
		lon:     s.Lon.Data,
		lat:     s.Lat.Data,
		values:  values,
		nLambda: nLambda,
		nMu:     nMu,
	}, nil
}

// ComputePhaseCurve computes the disk-integrated flux of the sampled body at
// each requested phase. The intensity field is fitted once via build and
// read-only thereafter; phases are mutually independent and evaluated in
// input order, one output row (one flux value per wavelength) per phase.
//
// A nil phases slice selects DefaultPhases.
func ComputePhaseCurve(phases []float64, samples SampleSet, build FieldBuilder) ([][]float64, error) {
	if phases == nil {
		phases = DefaultPhases()
	}

	n, err := normalizeSamples(samples)
	if err != nil {
		return nil, err
	}

	points, err := UnitDirections(n.lon, n.lat)
	if err != nil {
		return nil, err
	}

	field, err := build(points, n.values)
	if err != nil {
		return nil, err
	}

	grid := DefaultQuadrature()
	muBands, err := NewMuBandInterpolator(samples.Mus, grid.MuCenters)
	if err != nil {
		return nil, err
	}

	curve := make([][]float64, len(phases))
	for i, phase := range phases {
		curve[i] = fluxAtPhase(phase, field, grid, muBands, n.nLambda)
	}
	return curve, nil
}

// fluxAtPhase accumulates the weighted hemisphere integral for one phase:
// every quadrature direction is rotated into the body frame, the field is
// queried there, the intensity is interpolated to the cell's mu, and the
// Lambert-weighted contribution is summed per wavelength.
func fluxAtPhase(phase float64, field IntensityField, grid *QuadratureGrid, muBands *MuBandInterpolator, nLambda int) []float64 {
	rot := PhaseRotation(phase)

	flux := make([]float64, nLambda)
	band := make([]float64, nLambda)
	for j := range grid.PhiCenters {
		for i := range grid.MuCenters {
			dir := rot.Apply(grid.Direction(i, j))
			muBands.BandValues(field.At(dir), nLambda, i, band)

			w := grid.CellWeight(i, j)
			for k := 0; k < nLambda; k++ {
				flux[k] += band[k] * w
			}
		}
	}
	return flux
}
