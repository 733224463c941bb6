package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/exoclimes/phasecurve-api/internal/domain"
	"github.com/exoclimes/phasecurve-api/internal/usecase"
)

// Handler handles HTTP requests for phase-curve computation.
type Handler struct {
	computeUC *usecase.ComputeUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(computeUC *usecase.ComputeUseCase) *Handler {
	return &Handler{
		computeUC: computeUC,
	}
}

// computePayload is the JSON body of POST /v1/phasecurve. The coordinate
// and intensity fields are raw so that both accepted ranks can be decoded
// from their natural nested-array form.
type computePayload struct {
	Phases    []float64       `json:"phases"`
	Lon       json.RawMessage `json:"lon"`
	Lat       json.RawMessage `json:"lat"`
	Mus       []float64       `json:"mus"`
	Intensity json.RawMessage `json:"intensity"`
	Smoothing float64         `json:"smoothing"`
}

// ComputePhaseCurve handles POST /v1/phasecurve.
func (h *Handler) ComputePhaseCurve(c *gin.Context) {
	var payload computePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	lon, err := decodeCoord("lon", payload.Lon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lat, err := decodeCoord("lat", payload.Lat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	intensity, err := decodeIntensity(payload.Intensity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := usecase.ComputeRequest{
		Phases:    payload.Phases,
		Lon:       lon,
		Lat:       lat,
		Mus:       payload.Mus,
		Intensity: intensity,
		Smoothing: payload.Smoothing,
	}

	response, err := h.computeUC.Execute(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetQuadrature handles GET /v1/quadrature. It describes the fixed
// hemisphere grid the integrator uses.
func (h *Handler) GetQuadrature(c *gin.Context) {
	grid := domain.DefaultQuadrature()
	c.JSON(http.StatusOK, gin.H{
		"mu_centers":          grid.MuCenters,
		"mu_widths":           grid.MuWidths,
		"azimuth_centers":     grid.PhiCenters,
		"azimuth_widths":      grid.PhiWidths,
		"hemisphere_constant": grid.HemisphereConstant(),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// statusFor maps domain validation failures to 400 and everything else
// (e.g. a failed interpolation solve) to 500.
func statusFor(err error) int {
	var shapeErr *domain.InvalidShapeError
	var inputErr *domain.InvalidInputError
	if errors.As(err, &shapeErr) || errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, usecase.ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

var errBadPayload = errors.New("bad payload")

// decodeCoord decodes a coordinate array of rank 1 or 2 from JSON.
func decodeCoord(name string, raw json.RawMessage) (domain.Array, error) {
	if len(raw) == 0 {
		return domain.Array{}, fmt.Errorf("%w: %s is required", errBadPayload, name)
	}

	var flat []float64
	if err := json.Unmarshal(raw, &flat); err == nil {
		return domain.Vector(flat), nil
	}

	var grid [][]float64
	if err := json.Unmarshal(raw, &grid); err == nil {
		return flattenGrid(name, grid)
	}

	return domain.Array{}, fmt.Errorf("%w: %s must be a 1-D or 2-D numeric array", errBadPayload, name)
}

// decodeIntensity decodes an intensity tensor of rank 3 or 4 from JSON.
func decodeIntensity(raw json.RawMessage) (domain.Array, error) {
	if len(raw) == 0 {
		return domain.Array{}, fmt.Errorf("%w: intensity is required", errBadPayload)
	}

	var t3 [][][]float64
	if err := json.Unmarshal(raw, &t3); err == nil {
		return flattenTensor3(t3)
	}

	var t4 [][][][]float64
	if err := json.Unmarshal(raw, &t4); err == nil {
		return flattenTensor4(t4)
	}

	return domain.Array{}, fmt.Errorf("%w: intensity must be a 3-D or 4-D numeric array", errBadPayload)
}

func flattenGrid(name string, grid [][]float64) (domain.Array, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return domain.Array{}, fmt.Errorf("%w: %s must not be empty", errBadPayload, name)
	}
	cols := len(grid[0])
	data := make([]float64, 0, len(grid)*cols)
	for _, row := range grid {
		if len(row) != cols {
			return domain.Array{}, fmt.Errorf("%w: %s rows have inconsistent lengths", errBadPayload, name)
		}
		data = append(data, row...)
	}
	return domain.NewArray([]int{len(grid), cols}, data)
}

func flattenTensor3(t [][][]float64) (domain.Array, error) {
	if len(t) == 0 || len(t[0]) == 0 || len(t[0][0]) == 0 {
		return domain.Array{}, fmt.Errorf("%w: intensity must not be empty", errBadPayload)
	}
	d1, d2 := len(t[0]), len(t[0][0])
	data := make([]float64, 0, len(t)*d1*d2)
	for _, plane := range t {
		if len(plane) != d1 {
			return domain.Array{}, fmt.Errorf("%w: intensity has inconsistent dimensions", errBadPayload)
		}
		for _, row := range plane {
			if len(row) != d2 {
				return domain.Array{}, fmt.Errorf("%w: intensity has inconsistent dimensions", errBadPayload)
			}
			data = append(data, row...)
		}
	}
	return domain.NewArray([]int{len(t), d1, d2}, data)
}

func flattenTensor4(t [][][][]float64) (domain.Array, error) {
	if len(t) == 0 || len(t[0]) == 0 {
		return domain.Array{}, fmt.Errorf("%w: intensity must not be empty", errBadPayload)
	}
	d1 := len(t[0])
	var d2, d3 int
	data := []float64{}
	for _, block := range t {
		if len(block) != d1 {
			return domain.Array{}, fmt.Errorf("%w: intensity has inconsistent dimensions", errBadPayload)
		}
		for _, plane := range block {
			if d2 == 0 {
				d2 = len(plane)
				if d2 == 0 {
					return domain.Array{}, fmt.Errorf("%w: intensity must not be empty", errBadPayload)
				}
			}
			if len(plane) != d2 {
				return domain.Array{}, fmt.Errorf("%w: intensity has inconsistent dimensions", errBadPayload)
			}
			for _, row := range plane {
				if d3 == 0 {
					d3 = len(row)
					if d3 == 0 {
						return domain.Array{}, fmt.Errorf("%w: intensity must not be empty", errBadPayload)
					}
					data = make([]float64, 0, len(t)*d1*d2*d3)
				}
				if len(row) != d3 {
					return domain.Array{}, fmt.Errorf("%w: intensity has inconsistent dimensions", errBadPayload)
				}
				data = append(data, row...)
			}
		}
	}
	return domain.NewArray([]int{len(t), d1, d2, d3}, data)
}
