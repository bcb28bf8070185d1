// Package geom provides the small set of 3D operations shared by movers and
// the interaction graph builder.
//
// # Vectors
//
// [Vec] is an alias of the sdfx vector type, so values flow into and out of
// sdfx helpers without conversion:
//
//	p := geom.Vec{X: 1, Y: 0, Z: 0}
//	q := p.Add(geom.Vec{Z: 1}).MulScalar(2)
//
// All lengths are in Angstroms and all angles are in degrees.
//
// # Rotation
//
// [Rotate] turns a point about an arbitrary [Axis] by a signed angle. Positive
// angles are right-handed about the axis direction. The point is projected onto
// the axis line, its offset from that projection is rotated, and the projection
// is added back, so a point on the axis is a fixed point:
//
//	axis := geom.NewAxis(geom.Vec{}, geom.Vec{Z: 1})
//	p := geom.Rotate(geom.Vec{X: 1}, axis, 90) // ≈ (0, 1, 0)
//
// [SignedAngle] and [Dihedral] measure the angle that [Rotate] must apply to
// carry one direction onto another, which is how rigid realignments are built.
//
// # Bounding Boxes
//
// [Box] is an axis-aligned box backed by sdf.Box3. An empty box has inverted
// infinite bounds and never overlaps anything. [Box.IncludeSphere] grows the
// box to enclose an atom with its radius, [Box.Dilate] inflates it on every
// side and [Box.Overlaps] is the closed per-axis interval test.
package geom
