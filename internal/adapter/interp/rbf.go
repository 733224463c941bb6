// Package interp provides the scattered-data interpolation engine used to
// build a continuous intensity field over the unit sphere.
package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultSmoothing is the kernel regularization applied when the caller does
// not choose one. A small positive value keeps the fit well conditioned near
// closely spaced or coincident sample directions.
const DefaultSmoothing = 0.1

// RBFField is a vector-valued thin-plate-spline interpolant over scattered
// 3-D points, with a degree-1 polynomial tail. Fitting solves the saddle
// system
//
//	| K + λI  P | |w|   |y|
//	| Pᵀ      0 | |c| = |0|
//
// where K is the kernel matrix, λ the smoothing parameter and P the
// polynomial basis [1 x y z]. The polynomial tail carries constant and
// linear trends exactly, independent of λ.
//
// The field is immutable after construction; At may be called concurrently.
type RBFField struct {
	points [][3]float64
	coeffs *mat.Dense // (n+4)×m: kernel weights then polynomial coefficients
	nOut   int
}

// NewRBFField fits a field from n sample points to n value vectors of equal
// length. smoothing < 0 selects DefaultSmoothing.
func NewRBFField(points [][3]float64, values [][]float64, smoothing float64) (*RBFField, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("rbf: no sample points")
	}
	if len(values) != n {
		return nil, fmt.Errorf("rbf: %d points but %d value vectors", n, len(values))
	}
	nOut := len(values[0])
	if nOut == 0 {
		return nil, fmt.Errorf("rbf: empty value vectors")
	}
	for i, v := range values {
		if len(v) != nOut {
			return nil, fmt.Errorf("rbf: value vector %d has length %d, want %d", i, len(v), nOut)
		}
	}
	if smoothing < 0 {
		smoothing = DefaultSmoothing
	}

	const nPoly = 4 // 1, x, y, z
	size := n + nPoly

	a := mat.NewDense(size, size, nil)
	b := mat.NewDense(size, nOut, nil)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			k := thinPlate(dist(points[i], points[j]))
			a.Set(i, j, k)
			a.Set(j, i, k)
		}
		a.Set(i, i, a.At(i, i)+smoothing)

		a.Set(i, n, 1)
		a.Set(i, n+1, points[i][0])
		a.Set(i, n+2, points[i][1])
		a.Set(i, n+3, points[i][2])
		a.Set(n, i, 1)
		a.Set(n+1, i, points[i][0])
		a.Set(n+2, i, points[i][1])
		a.Set(n+3, i, points[i][2])

		b.SetRow(i, values[i])
	}

	var coeffs mat.Dense
	if err := coeffs.Solve(a, b); err != nil {
		return nil, fmt.Errorf("rbf: kernel system solve failed: %w", err)
	}

	pts := make([][3]float64, n)
	copy(pts, points)

	return &RBFField{points: pts, coeffs: &coeffs, nOut: nOut}, nil
}

// OutputLen returns the length of the interpolated value vectors.
func (f *RBFField) OutputLen() int {
	return f.nOut
}

// At evaluates the field at an arbitrary direction. The query is not
// required to lie on the original sample set.
func (f *RBFField) At(dir [3]float64) []float64 {
	n := len(f.points)
	out := make([]float64, f.nOut)

	for i, p := range f.points {
		w := thinPlate(dist(p, dir))
		if w == 0 {
			continue
		}
		for k := 0; k < f.nOut; k++ {
			out[k] += w * f.coeffs.At(i, k)
		}
	}

	for k := 0; k < f.nOut; k++ {
		out[k] += f.coeffs.At(n, k) +
			f.coeffs.At(n+1, k)*dir[0] +
			f.coeffs.At(n+2, k)*dir[1] +
			f.coeffs.At(n+3, k)*dir[2]
	}
	return out
}

// thinPlate is the thin-plate-spline kernel φ(r) = r² log r, with the
// removable singularity at r = 0 evaluated as 0.
func thinPlate(r float64) float64 {
	if r == 0 {
		return 0
	}
	return r * r * math.Log(r)
}

func dist(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
