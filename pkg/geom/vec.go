package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec is a point or direction in 3D space.
type Vec = v3.Vec

// Tolerance is the absolute error accepted when comparing coordinates.
const Tolerance = 1e-5

// degenerate is the length below which a direction is treated as zero.
const degenerate = 1e-10

// Unit returns v scaled to length 1. The second result is false when v is
// too short to have a direction, in which case the zero vector is returned.
func Unit(v Vec) (Vec, bool) {
	l := v.Length()
	if l < degenerate {
		return Vec{}, false
	}
	return v.MulScalar(1 / l), true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Length()
}

// Distance2 returns the squared Euclidean distance between a and b.
func Distance2(a, b Vec) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// ApproxEqual reports whether a and b agree within tol on every component.
func ApproxEqual(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
