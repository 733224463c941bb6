package domain

// IntensityField is a continuous intensity field over the unit sphere,
// fitted once from scattered surface samples and queried read-only for the
// rest of the computation. At returns the interpolated intensity vector at a
// unit direction, flattened wavelength-major over the sample mu bins.
type IntensityField interface {
	At(dir [3]float64) []float64
}

// FieldBuilder fits an IntensityField from sample directions and their
// intensity vectors. The concrete interpolation scheme (kernel choice,
// smoothing, any truncation for large sample counts) is pluggable behind
// this capability; the engine only needs fit-once/query-many semantics.
type FieldBuilder func(points [][3]float64, values [][]float64) (IntensityField, error)
