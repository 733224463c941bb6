package domain

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// UnitDirections converts longitude/latitude pairs (degrees) to unit-sphere
// Cartesian direction vectors.
//
// Latitude maps to the polar angle θ = (lat+90°)/180°·π, so lat = −90°
// points along −z and lat = +90° along +z; longitude maps to the azimuth
// φ = lon/180°·π. The conversion is
//
//	x = cos φ sin θ, y = sin φ sin θ, z = cos θ
//
// Both slices must have the same length.
func UnitDirections(lonDeg, latDeg []float64) ([][3]float64, error) {
	if len(lonDeg) != len(latDeg) {
		return nil, &InvalidInputError{
			Reason: "lon and lat must have the same number of surface points",
		}
	}

	dirs := make([][3]float64, len(lonDeg))
	for i := range lonDeg {
		phi := Deg2Rad(lonDeg[i])
		theta := Deg2Rad(latDeg[i] + 90.0)
		sinTheta, cosTheta := math.Sincos(theta)
		sinPhi, cosPhi := math.Sincos(phi)
		dirs[i] = [3]float64{cosPhi * sinTheta, sinPhi * sinTheta, cosTheta}
	}
	return dirs, nil
}
