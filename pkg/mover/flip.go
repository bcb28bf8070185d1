package mover

import (
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// Index of each atom in a Flip's controlled atom list.
const (
	flipLight0 = iota
	flipLight1
	flipNeighbor
	flipPartner
	flipTerminal
)

// Flip swaps the two terminal heavy atoms of a planar group such as an
// amide, where the two positions cannot be told apart from density alone.
//
// Its atoms are ordered [light0, light1, neighbor, partner, terminal]: the
// two hydrogens on the neighbor, the neighbor, the partner it is bonded to,
// and the other terminal heavy atom on the partner.
type Flip struct {
	atoms  []*structure.Atom
	coarse [][]geom.Vec
	fixUp  FixUpResult
}

// NewFlip builds a flip mover anchored on neighbor.
//
// The neighbor must have exactly three bonds: two hydrogens and the partner.
// The partner must be bonded to the neighbor, to exactly one terminal heavy
// atom with no other bonds, and to one heavy anchor atom. The neighbor,
// partner and terminal must not be colinear. Options are accepted for a
// uniform constructor signature; a flip has no angular ladder.
func NewFlip(neighbor *structure.Atom, s *structure.Structure, _ Options) (*Flip, error) {
	const kind = KindFlip
	if neighbor.IsHydrogen() {
		return nil, structureError(kind, neighbor, "expected a heavy atom")
	}
	nbrs := s.Neighbors(neighbor)
	if len(nbrs) != 3 {
		return nil, structureError(kind, neighbor, "expected 3 bonded neighbors, found %d", len(nbrs))
	}
	var lights []*structure.Atom
	var partner *structure.Atom
	for _, n := range nbrs {
		if n.IsHydrogen() {
			lights = append(lights, n)
		} else {
			partner = n
		}
	}
	if len(lights) != 2 || partner == nil {
		return nil, structureError(kind, neighbor, "expected 2 hydrogens and 1 partner, found %d hydrogens", len(lights))
	}

	others := without(s.Neighbors(partner), neighbor)
	if len(others) != 2 {
		return nil, structureError(kind, partner, "expected 3 bonded neighbors, found %d", len(others)+1)
	}
	var terminals, anchors []*structure.Atom
	for _, o := range others {
		if o.IsHydrogen() {
			return nil, structureError(kind, partner, "expected heavy atoms besides the neighbor, found hydrogen %d", o.ID)
		}
		if s.Degree(o) == 1 {
			terminals = append(terminals, o)
		} else {
			anchors = append(anchors, o)
		}
	}
	if len(terminals) != 1 || len(anchors) != 1 {
		return nil, structureError(kind, partner, "expected 1 terminal heavy atom with exactly 1 bond and 1 anchor, found %d terminals", len(terminals))
	}
	terminal, anchor := terminals[0], anchors[0]

	f := &Flip{
		atoms: []*structure.Atom{lights[0], lights[1], neighbor, partner, terminal},
	}
	orig := positionsOf(f.atoms)

	swapped, err := f.swappedPositions(orig)
	if err != nil {
		return nil, err
	}
	f.coarse = [][]geom.Vec{orig, swapped}

	aligned, err := f.realign(orig, anchor)
	if err != nil {
		return nil, err
	}
	f.fixUp = FixUpResult{Atoms: f.atoms, Positions: aligned}
	return f, nil
}

// swappedPositions exchanges the neighbor and terminal coordinates and
// rebuilds the hydrogens in the group plane on the new neighbor position, at
// their original bond lengths and ±120° from the bond back to the partner.
// The in-plane sense of each hydrogen is mirrored, as a rigid flip would.
func (f *Flip) swappedPositions(orig []geom.Vec) ([]geom.Vec, error) {
	n := orig[flipNeighbor]
	c := orig[flipPartner]
	o := orig[flipTerminal]

	normal, ok := geom.PlaneNormal(c, n, o)
	if !ok {
		return nil, structureError(KindFlip, f.atoms[flipPartner], "neighbor, partner and terminal are colinear")
	}

	sides := [2]float64{
		side(geom.SignedAngle(c.Sub(n), orig[flipLight0].Sub(n), normal)),
		side(geom.SignedAngle(c.Sub(n), orig[flipLight1].Sub(n), normal)),
	}
	if sides[0] == 0 || sides[1] == 0 || sides[0] == sides[1] {
		sides = [2]float64{-1, 1}
	}

	bond, _ := geom.Unit(c.Sub(o))
	spin := geom.Axis{Direction: normal}
	out := make([]geom.Vec, len(orig))
	for i := flipLight0; i <= flipLight1; i++ {
		length := geom.Distance(orig[i], n)
		dir := geom.Rotate(bond, spin, -sides[i]*120)
		out[i] = o.Add(dir.MulScalar(length))
	}
	out[flipNeighbor] = o
	out[flipPartner] = c
	out[flipTerminal] = n
	return out, nil
}

func side(deg float64) float64 {
	switch {
	case deg > geom.Tolerance:
		return 1
	case deg < -geom.Tolerance:
		return -1
	}
	return 0
}

// realign computes the rigid motion of the whole group that puts the
// terminal where the neighbor was while keeping the group in its plane and
// the partner on its original side of the anchor.
func (f *Flip) realign(orig []geom.Vec, anchor *structure.Atom) ([]geom.Vec, error) {
	cb := anchor.Pos
	c := orig[flipPartner]
	origN := orig[flipNeighbor]

	spin, ok := geom.AxisThrough(c, cb)
	if !ok {
		return nil, structureError(KindFlip, anchor, "anchor coincides with partner %d", f.atoms[flipPartner].ID)
	}
	pos := geom.RotateAll(orig, spin, 180)

	// Hinge about the partner so the group plane matches the original one,
	// with the neighbor and terminal roles exchanged.
	n0, _ := geom.PlaneNormal(c, origN, orig[flipTerminal])
	c1 := pos[flipPartner]
	n1, ok := geom.PlaneNormal(c1, pos[flipTerminal], pos[flipNeighbor])
	if ok {
		if hinge, ok := geom.NewAxis(c1, n1.Cross(n0)); ok {
			pos = geom.RotateAll(pos, hinge, geom.AngleBetween(n1, n0))
		}
	}

	// Swing about the anchor until the terminal sits on the anchor→neighbor line.
	u := pos[flipTerminal].Sub(cb)
	v := origN.Sub(cb)
	if swing, ok := geom.NewAxis(cb, u.Cross(v)); ok {
		pos = geom.RotateAll(pos, swing, geom.AngleBetween(u, v))
	}

	// Twist about that line to bring the partner back into its original half-plane.
	if twist, ok := geom.AxisThrough(cb, pos[flipTerminal]); ok {
		ang := geom.Dihedral(pos[flipPartner], cb, pos[flipTerminal], c)
		pos = geom.RotateAll(pos, twist, ang)
	}
	return pos, nil
}

func (*Flip) sealed() {}

// Kind implements Mover.
func (*Flip) Kind() Kind { return KindFlip }

// Atoms implements Mover.
func (f *Flip) Atoms() []*structure.Atom { return f.atoms }

// CoarsePositions returns the original placement and the swapped one, both
// with preference 0.
func (f *Flip) CoarsePositions() PositionSet {
	pos := make([][]geom.Vec, len(f.coarse))
	for i, p := range f.coarse {
		pos[i] = append([]geom.Vec(nil), p...)
	}
	return PositionSet{
		Atoms:       f.atoms,
		Positions:   pos,
		Preferences: []float64{0, 0},
	}
}

// FinePositions is always empty.
func (*Flip) FinePositions(int) (PositionSet, error) { return PositionSet{}, nil }

// FixUp returns nothing for the original placement and the rigid
// realignment of the whole group for the swapped one.
func (f *Flip) FixUp(coarseIndex int) (FixUpResult, error) {
	switch coarseIndex {
	case 0:
		return FixUpResult{}, nil
	case 1:
		return FixUpResult{
			Atoms:     f.fixUp.Atoms,
			Positions: append([]geom.Vec(nil), f.fixUp.Positions...),
		}, nil
	}
	return FixUpResult{}, badIndex(coarseIndex, len(f.coarse))
}
