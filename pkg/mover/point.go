package mover

import (
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// Point is a single atom with exactly one candidate: where it already is.
type Point struct {
	atom *structure.Atom
}

// NewPoint returns a Point mover for atom.
func NewPoint(atom *structure.Atom) *Point {
	return &Point{atom: atom}
}

func (*Point) sealed() {}

// Kind implements Mover.
func (*Point) Kind() Kind { return KindPoint }

// Atoms implements Mover.
func (p *Point) Atoms() []*structure.Atom { return []*structure.Atom{p.atom} }

// CoarsePositions returns the atom's current position with preference 0.
func (p *Point) CoarsePositions() PositionSet {
	return PositionSet{
		Atoms:       p.Atoms(),
		Positions:   [][]geom.Vec{{p.atom.Pos}},
		Preferences: []float64{0},
	}
}

// FinePositions is always empty.
func (*Point) FinePositions(int) (PositionSet, error) { return PositionSet{}, nil }

// FixUp is always empty.
func (*Point) FixUp(int) (FixUpResult, error) { return FixUpResult{}, nil }
