// Package usecase orchestrates phase-curve computation between the
// transport/CLI layer and the domain engine.
package usecase

import (
	"errors"
	"fmt"

	"github.com/exoclimes/phasecurve-api/internal/adapter/interp"
	"github.com/exoclimes/phasecurve-api/internal/domain"
)

// ErrInvalidRequest marks request-level validation failures so the transport
// layer can distinguish them from computation failures.
var ErrInvalidRequest = errors.New("invalid request")

// maxPhases bounds a single request; the cost of a request grows linearly
// with the phase count.
const maxPhases = 10000

// ComputeRequest encapsulates one phase-curve computation.
type ComputeRequest struct {
	// Phases at which to evaluate the curve. Nil selects the default
	// 11 evenly spaced phases in [0,1].
	Phases []float64

	// Surface coordinates in degrees, rank 1 or rank 2.
	Lon domain.Array
	Lat domain.Array

	// Emission-angle cosines of the intensity's mu dimension, strictly
	// increasing.
	Mus []float64

	// Intensity tensor, rank 3 (points, wavelengths, mus) or rank 4
	// (d1, d2, wavelengths, mus).
	Intensity domain.Array

	// Smoothing overrides the configured RBF regularization when > 0.
	Smoothing float64
}

// Validate checks the request bounds that are independent of array shapes;
// shape and monotonicity validation happens in the domain engine.
func (r *ComputeRequest) Validate() error {
	if len(r.Phases) > maxPhases {
		return fmt.Errorf("too many phases (%d) - maximum is %d", len(r.Phases), maxPhases)
	}
	if len(r.Mus) == 0 {
		return fmt.Errorf("mus must not be empty")
	}
	if r.Intensity.Size() == 0 {
		return fmt.Errorf("intensity must not be empty")
	}
	if r.Smoothing < 0 {
		return fmt.Errorf("smoothing must be non-negative")
	}
	return nil
}

// ComputeResponse contains the computed phase curve.
type ComputeResponse struct {
	Phases   []float64   `json:"phases"`
	Channels int         `json:"channels"`
	Flux     [][]float64 `json:"flux"` // row per phase, column per wavelength
}

// ComputeUseCase runs phase-curve computations with a configured
// interpolation smoothing.
type ComputeUseCase struct {
	smoothing float64
}

// NewComputeUseCase creates a use case. smoothing <= 0 selects the default
// RBF regularization.
func NewComputeUseCase(smoothing float64) *ComputeUseCase {
	if smoothing <= 0 {
		smoothing = interp.DefaultSmoothing
	}
	return &ComputeUseCase{smoothing: smoothing}
}

// Execute validates the request, fits the intensity field and integrates the
// phase curve.
func (uc *ComputeUseCase) Execute(req ComputeRequest) (*ComputeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	smoothing := uc.smoothing
	if req.Smoothing > 0 {
		smoothing = req.Smoothing
	}

	build := func(points [][3]float64, values [][]float64) (domain.IntensityField, error) {
		return interp.NewRBFField(points, values, smoothing)
	}

	phases := req.Phases
	if phases == nil {
		phases = domain.DefaultPhases()
	}

	samples := domain.SampleSet{
		Lon:       req.Lon,
		Lat:       req.Lat,
		Mus:       req.Mus,
		Intensity: req.Intensity,
	}

	flux, err := domain.ComputePhaseCurve(phases, samples, build)
	if err != nil {
		return nil, err
	}

	channels := 0
	if len(flux) > 0 {
		channels = len(flux[0])
	}

	return &ComputeResponse{
		Phases:   phases,
		Channels: channels,
		Flux:     flux,
	}, nil
}
