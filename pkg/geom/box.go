package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
)

// Box is an axis-aligned bounding box.
type Box struct {
	sdf.Box3
}

// EmptyBox returns a box that contains nothing. Including any point or sphere
// makes it non-empty.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{sdf.Box3{
		Min: Vec{X: inf, Y: inf, Z: inf},
		Max: Vec{X: -inf, Y: -inf, Z: -inf},
	}}
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// IncludeSphere grows the box to enclose a sphere of radius r centered at c.
// Negative radii are treated as zero.
func (b Box) IncludeSphere(c Vec, r float64) Box {
	r = math.Max(r, 0)
	ext := Vec{X: r, Y: r, Z: r}
	return Box{sdf.Box3{
		Min: b.Min.Min(c.Sub(ext)),
		Max: b.Max.Max(c.Add(ext)),
	}}
}

// Dilate inflates the box by d on every side. Negative values are clamped to
// zero so a box never shrinks. Empty boxes stay empty.
func (b Box) Dilate(d float64) Box {
	if b.Empty() || d <= 0 {
		return b
	}
	ext := Vec{X: d, Y: d, Z: d}
	return Box{sdf.Box3{
		Min: b.Min.Sub(ext),
		Max: b.Max.Add(ext),
	}}
}

// Overlaps reports whether b and o share at least one point. Touching faces
// count as overlap. Empty boxes overlap nothing.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}
