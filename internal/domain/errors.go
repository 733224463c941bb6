package domain

import "fmt"

// InvalidShapeError reports an input array whose rank or dimensions are not
// among the accepted forms. No partial result is ever returned alongside it.
type InvalidShapeError struct {
	Name  string // which input ("lon", "lat", "intensity")
	Shape []int
	Want  string // description of the accepted shapes
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid shape for %s: got %v, want %s", e.Name, e.Shape, e.Want)
}

// InvalidInputError reports input values that are structurally well-shaped
// but semantically unusable (e.g. a non-monotonic mu sequence).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
