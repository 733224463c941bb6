package domain

import "math"

// QuadratureGrid is a fixed midpoint product grid over the observer-facing
// hemisphere: mu bins partition [1,0] in descending order (mu = 1 at the
// sub-observer point, mu = 0 at the limb) and azimuth bins partition [0,2π).
// The grid never depends on the sample data and is reused for every phase.
type QuadratureGrid struct {
	MuCenters  []float64 // descending
	MuWidths   []float64
	PhiCenters []float64
	PhiWidths  []float64
}

// NewQuadratureGrid builds an nMu×nPhi midpoint grid.
func NewQuadratureGrid(nMu, nPhi int) *QuadratureGrid {
	g := &QuadratureGrid{
		MuCenters:  make([]float64, nMu),
		MuWidths:   make([]float64, nMu),
		PhiCenters: make([]float64, nPhi),
		PhiWidths:  make([]float64, nPhi),
	}

	// Mu edges run 1 → 0 so that cell 0 sits at the sub-observer point.
	dMu := 1.0 / float64(nMu)
	for i := 0; i < nMu; i++ {
		hi := 1.0 - float64(i)*dMu
		lo := 1.0 - float64(i+1)*dMu
		g.MuCenters[i] = (hi + lo) / 2.0
		g.MuWidths[i] = hi - lo
	}

	dPhi := 2.0 * math.Pi / float64(nPhi)
	for j := 0; j < nPhi; j++ {
		lo := float64(j) * dPhi
		hi := float64(j+1) * dPhi
		g.PhiCenters[j] = (lo + hi) / 2.0
		g.PhiWidths[j] = hi - lo
	}

	return g
}

// DefaultQuadrature returns the standard 10×10 hemisphere grid.
func DefaultQuadrature() *QuadratureGrid {
	return NewQuadratureGrid(10, 10)
}

// Direction returns the local-frame unit vector of cell (iMu, jPhi), built
// with z as the mu axis:
//
//	x = cos φ √(1−mu²), y = sin φ √(1−mu²), z = mu
func (g *QuadratureGrid) Direction(iMu, jPhi int) [3]float64 {
	mu := g.MuCenters[iMu]
	sinTheta := math.Sqrt(1.0 - mu*mu)
	sinPhi, cosPhi := math.Sincos(g.PhiCenters[jPhi])
	return [3]float64{cosPhi * sinTheta, sinPhi * sinTheta, mu}
}

// CellWeight returns the integration weight of cell (iMu, jPhi), including
// the Lambert mu factor for projected-area foreshortening.
func (g *QuadratureGrid) CellWeight(iMu, jPhi int) float64 {
	return g.MuCenters[iMu] * g.MuWidths[iMu] * g.PhiWidths[jPhi]
}

// HemisphereConstant returns the sum of all cell weights. For a unit
// isotropic intensity the integrated flux equals this constant (π for the
// default grid).
func (g *QuadratureGrid) HemisphereConstant() float64 {
	total := 0.0
	for i := range g.MuCenters {
		for j := range g.PhiCenters {
			total += g.CellWeight(i, j)
		}
	}
	return total
}
