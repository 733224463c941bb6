package usecase

import (
	"fmt"

	"github.com/exoclimes/phasecurve-api/internal/domain"
)

// SpectrumProvider computes the emergent emission spectrum of one grid cell
// at each requested emission-angle cosine. The returned matrix is
// (wavelengths × len(mus)). Concrete implementations wrap an external
// radiative-transfer solver and are supplied by the integrating system.
type SpectrumProvider interface {
	EmissionSpectrum(cell int, mus []float64) ([][]float64, error)
}

// GridAccessor exposes the surface grid of an atmospheric-state dataset:
// cell identifiers and their coordinates.
type GridAccessor interface {
	CellCount() int
	CellCoordinates(cell int) (lonDeg, latDeg float64)
}

// AssembleSamples composes a grid accessor and a spectrum provider into the
// canonical sample set the compute engine takes. Every cell must yield a
// spectrum of the same (wavelengths × mus) shape.
func AssembleSamples(grid GridAccessor, spectra SpectrumProvider, mus []float64) (*domain.SampleSet, error) {
	nCells := grid.CellCount()
	if nCells == 0 {
		return nil, fmt.Errorf("grid has no cells")
	}

	lon := make([]float64, nCells)
	lat := make([]float64, nCells)

	var intensity []float64
	nLambda := 0

	for cell := 0; cell < nCells; cell++ {
		lon[cell], lat[cell] = grid.CellCoordinates(cell)

		spectrum, err := spectra.EmissionSpectrum(cell, mus)
		if err != nil {
			return nil, fmt.Errorf("failed to compute spectrum for cell %d: %w", cell, err)
		}

		if cell == 0 {
			nLambda = len(spectrum)
			if nLambda == 0 {
				return nil, fmt.Errorf("cell 0 produced an empty spectrum")
			}
			intensity = make([]float64, 0, nCells*nLambda*len(mus))
		}
		if len(spectrum) != nLambda {
			return nil, fmt.Errorf("cell %d produced %d channels, want %d", cell, len(spectrum), nLambda)
		}
		for w, row := range spectrum {
			if len(row) != len(mus) {
				return nil, fmt.Errorf("cell %d channel %d has %d mu values, want %d", cell, w, len(row), len(mus))
			}
			intensity = append(intensity, row...)
		}
	}

	intensityArr, err := domain.NewArray([]int{nCells, nLambda, len(mus)}, intensity)
	if err != nil {
		return nil, err
	}

	return &domain.SampleSet{
		Lon:       domain.Vector(lon),
		Lat:       domain.Vector(lat),
		Mus:       mus,
		Intensity: intensityArr,
	}, nil
}
