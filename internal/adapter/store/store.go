// Package store defines the loading boundary for surface-intensity samples.
package store

import "github.com/exoclimes/phasecurve-api/internal/domain"

// SampleLoader is the interface for loading a surface-intensity sample set.
type SampleLoader interface {
	// LoadSamples reads one complete sample set from the backing source.
	LoadSamples() (*domain.SampleSet, error)
}
