package geom

import "math"

// Axis is a directed line in space. Direction has unit length when the axis
// is built with [NewAxis] or [AxisThrough].
type Axis struct {
	Origin    Vec
	Direction Vec
}

// NewAxis returns an axis through origin along direction. The second result
// is false when direction has no length.
func NewAxis(origin, direction Vec) (Axis, bool) {
	d, ok := Unit(direction)
	return Axis{Origin: origin, Direction: d}, ok
}

// AxisThrough returns the axis that starts at from and points toward to.
func AxisThrough(from, to Vec) (Axis, bool) {
	return NewAxis(from, to.Sub(from))
}

// NearestOnAxis returns the point on the axis line closest to p.
func NearestOnAxis(p Vec, axis Axis) Vec {
	t := p.Sub(axis.Origin).Dot(axis.Direction)
	return axis.Origin.Add(axis.Direction.MulScalar(t))
}

// Perpendicular returns the component of p's offset from the axis line that
// is orthogonal to the axis.
func Perpendicular(p Vec, axis Axis) Vec {
	return p.Sub(NearestOnAxis(p, axis))
}

// Rotate rotates p about axis by degrees, right-handed about the axis
// direction. Points on the axis are returned unchanged.
func Rotate(p Vec, axis Axis, degrees float64) Vec {
	n := NearestOnAxis(p, axis)
	off := p.Sub(n)
	if off.Length() < degenerate {
		return p
	}

	// Rodrigues with k·off = 0, since off is orthogonal to the axis.
	rad := Radians(degrees)
	s, c := math.Sincos(rad)
	k := axis.Direction
	rotated := off.MulScalar(c).Add(k.Cross(off).MulScalar(s))
	return n.Add(rotated)
}

// RotateAll rotates every point of ps about axis and returns a new slice.
func RotateAll(ps []Vec, axis Axis, degrees float64) []Vec {
	out := make([]Vec, len(ps))
	for i, p := range ps {
		out[i] = Rotate(p, axis, degrees)
	}
	return out
}
