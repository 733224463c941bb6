package domain

// Array is a dense row-major tensor of float64 values.
//
// The compute entry point accepts coordinate arrays of rank 1 or 2 and
// intensity tensors of rank 3 or 4; carrying the shape alongside the flat
// data is what makes that rank check expressible. After input normalization
// the engine only ever sees flattened data.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray creates an Array and verifies that the data length matches the
// product of the shape dimensions.
func NewArray(shape []int, data []float64) (Array, error) {
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return Array{}, &InvalidInputError{Reason: "array dimensions must be positive"}
		}
		size *= d
	}
	if size != len(data) {
		return Array{}, &InvalidInputError{
			Reason: "array data length does not match its shape",
		}
	}
	return Array{Shape: shape, Data: data}, nil
}

// Vector wraps a flat slice as a rank-1 Array.
func Vector(data []float64) Array {
	return Array{Shape: []int{len(data)}, Data: data}
}

// Rank returns the number of dimensions.
func (a Array) Rank() int {
	return len(a.Shape)
}

// Size returns the total number of elements.
func (a Array) Size() int {
	return len(a.Data)
}
