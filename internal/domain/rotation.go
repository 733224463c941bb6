package domain

import "math"

// Mat3 is a 3×3 matrix in row-major order.
type Mat3 [9]float64

// Mul returns m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[r*3+k] * n[k*3+c]
			}
			out[r*3+c] = sum
		}
	}
	return out
}

// Apply returns m·v.
func (m Mat3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// axisRealign maps the quadrature grid's local frame (z is the mu axis) into
// the body's native axis convention: the local z axis becomes body x, local y
// stays y, and body z = −local x.
var axisRealign = Mat3{
	0, 0, 1,
	0, 1, 0,
	-1, 0, 0,
}

// rotationX is a standard rotation about the x axis.
func rotationX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// PhaseRotation returns the matrix that maps an observer-frame quadrature
// direction into the body frame at the given rotational phase (fraction of
// one rotation). The rotation angle is −2π·phase about the polar axis, so
// increasing phase turns the body against the direction of increasing angle.
//
// The composition (axis realignment followed by the x-axis rotation) encodes
// the upstream phase-zero convention and is kept as a fixed, tested contract.
func PhaseRotation(phase float64) Mat3 {
	return axisRealign.Mul(rotationX(-2.0 * math.Pi * phase))
}
