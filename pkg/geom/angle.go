package geom

import "math"

// AngleBetween returns the unsigned angle between a and b in degrees, in
// [0, 180]. Zero-length inputs yield 0.
func AngleBetween(a, b Vec) float64 {
	ua, ok1 := Unit(a)
	ub, ok2 := Unit(b)
	if !ok1 || !ok2 {
		return 0
	}
	d := math.Max(-1, math.Min(1, ua.Dot(ub)))
	return Degrees(math.Acos(d))
}

// SignedAngle returns the angle in degrees that rotates the direction of a
// onto the direction of b about axis, after both are projected onto the plane
// orthogonal to axis. The result lies in (-180, 180]; rotating a by it with
// [Rotate] lines it up with b.
func SignedAngle(a, b, axis Vec) float64 {
	k, ok := Unit(axis)
	if !ok {
		return 0
	}
	pa := a.Sub(k.MulScalar(a.Dot(k)))
	pb := b.Sub(k.MulScalar(b.Dot(k)))
	y := pa.Cross(pb).Dot(k)
	x := pa.Dot(pb)
	if math.Abs(x) < degenerate && math.Abs(y) < degenerate {
		return 0
	}
	return Degrees(math.Atan2(y, x))
}

// Dihedral returns the signed torsion angle in degrees of the chain
// p0-p1-p2-p3 about the p1→p2 bond: the rotation about that bond that carries
// the p0 half-plane onto the p3 half-plane.
func Dihedral(p0, p1, p2, p3 Vec) float64 {
	return SignedAngle(p0.Sub(p1), p3.Sub(p2), p2.Sub(p1))
}

// PlaneNormal returns the unit normal of the plane through a, b and c,
// oriented by (b-a)×(c-a). The second result is false when the points are
// colinear.
func PlaneNormal(a, b, c Vec) (Vec, bool) {
	return Unit(b.Sub(a).Cross(c.Sub(a)))
}
