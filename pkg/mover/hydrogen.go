package mover

import (
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// Rotation periods in degrees for the preference energies.
const (
	twoFoldPeriod   = 180.0
	threeFoldPeriod = 120.0
)

// NewSingleHydrogenRotator builds a rotator for a lone hydrogen on a heavy
// atom with one other bond, such as a hydroxyl, thiol or selenol hydrogen.
//
// The hydrogen must have exactly one bonded neighbor, that neighbor exactly
// one other bonded partner, and the partner two or three further bonded
// atoms (friends). The axis runs from the partner to the neighbor. The
// hydrogen is moved at once to point away from the first friend, keeping its
// distance from the axis; that placement is the 0° state.
func NewSingleHydrogenRotator(atom *structure.Atom, s *structure.Structure, opts Options) (*Rotator, error) {
	const kind = KindSingleHydrogen
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !atom.IsHydrogen() {
		return nil, structureError(kind, atom, "expected a hydrogen")
	}
	nbrs := s.Neighbors(atom)
	if len(nbrs) != 1 {
		return nil, structureError(kind, atom, "expected 1 bonded neighbor, found %d", len(nbrs))
	}
	neighbor := nbrs[0]

	others := without(s.Neighbors(neighbor), atom)
	if len(others) != 1 {
		return nil, structureError(kind, neighbor, "expected 1 partner besides hydrogen %d, found %d", atom.ID, len(others))
	}
	partner := others[0]

	friends := without(s.Neighbors(partner), neighbor)
	if len(friends) != 2 && len(friends) != 3 {
		return nil, structureError(kind, partner, "expected 2 or 3 friends, found %d", len(friends))
	}

	axis, ok := geom.AxisThrough(partner.Pos, neighbor.Pos)
	if !ok {
		return nil, structureError(kind, partner, "partner and neighbor %d coincide", neighbor.ID)
	}
	pos, ok := awayFrom(atom.Pos, axis, friends[0].Pos)
	if !ok {
		return nil, structureError(kind, friends[0], "friend lies on the rotation axis")
	}
	atom.Pos = pos

	period := threeFoldPeriod
	if len(friends) == 2 {
		period = twoFoldPeriod
	}
	return newRotator(kind, []*structure.Atom{atom}, axis, RotatorConfig{
		CoarseRange:     180,
		CoarseStep:      opts.CoarseStep,
		FineStep:        opts.FineStep,
		DoFine:          true,
		Preference:      periodicPreference(period),
		PreferenceScale: opts.PreferenceScale,
	})
}

// NewNH3Rotator builds a rotator for the three hydrogens of an amine
// nitrogen with one heavy partner that itself has three friends. The first
// hydrogen is placed away from the first friend and the other two at ±120°
// from it.
func NewNH3Rotator(atom *structure.Atom, s *structure.Structure, opts Options) (*Rotator, error) {
	g, err := findTriple(KindNH3, atom, s, opts, "N", 3)
	if err != nil {
		return nil, err
	}
	if err := g.place(0); err != nil {
		return nil, err
	}
	return newRotator(KindNH3, g.hydrogens, g.axis, RotatorConfig{
		CoarseRange:     180,
		CoarseStep:      opts.CoarseStep,
		FineStep:        opts.FineStep,
		DoFine:          true,
		Preference:      periodicPreference(threeFoldPeriod),
		PreferenceScale: opts.PreferenceScale,
	})
}

// NewAromaticMethylRotator builds a two-state rotator for a methyl carbon on
// a partner with two friends, as on an aromatic ring. The hydrogens are
// placed away from a friend and then turned a further 90°, so the two states
// are mirror images across the ring plane. There are no fine positions and
// no preference energies.
func NewAromaticMethylRotator(atom *structure.Atom, s *structure.Structure, opts Options) (*Rotator, error) {
	g, err := findTriple(KindAromaticMethyl, atom, s, opts, "C", 2)
	if err != nil {
		return nil, err
	}
	if err := g.place(90); err != nil {
		return nil, err
	}
	return newRotator(KindAromaticMethyl, g.hydrogens, g.axis, RotatorConfig{
		CoarseRange:     180,
		CoarseStep:      180,
		PreferenceScale: opts.PreferenceScale,
	})
}

// NewTetrahedralMethylRotator builds a rotator for a methyl carbon on a
// partner with three friends. It searches the full coarse and fine ladders
// with a 120° periodic preference.
func NewTetrahedralMethylRotator(atom *structure.Atom, s *structure.Structure, opts Options) (*Rotator, error) {
	g, err := findTriple(KindTetrahedralMethyl, atom, s, opts, "C", 3)
	if err != nil {
		return nil, err
	}
	if err := g.place(0); err != nil {
		return nil, err
	}
	return newRotator(KindTetrahedralMethyl, g.hydrogens, g.axis, RotatorConfig{
		CoarseRange:     180,
		CoarseStep:      opts.CoarseStep,
		FineStep:        opts.FineStep,
		DoFine:          true,
		Preference:      periodicPreference(threeFoldPeriod),
		PreferenceScale: opts.PreferenceScale,
	})
}

// tripleGroup is a center atom carrying three hydrogens that spin about
// the partner→center bond.
type tripleGroup struct {
	kind      Kind
	center    *structure.Atom
	hydrogens []*structure.Atom
	partner   *structure.Atom
	friends   []*structure.Atom
	axis      geom.Axis
}

func findTriple(kind Kind, center *structure.Atom, s *structure.Structure, opts Options, element string, nFriends int) (*tripleGroup, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if center.Element != element {
		return nil, structureError(kind, center, "expected element %s", element)
	}
	nbrs := s.Neighbors(center)
	if len(nbrs) != 4 {
		return nil, structureError(kind, center, "expected 4 bonded neighbors, found %d", len(nbrs))
	}
	g := &tripleGroup{kind: kind, center: center}
	for _, n := range nbrs {
		if n.IsHydrogen() {
			g.hydrogens = append(g.hydrogens, n)
		} else if g.partner == nil {
			g.partner = n
		} else {
			return nil, structureError(kind, center, "expected exactly 1 heavy partner")
		}
	}
	if len(g.hydrogens) != 3 {
		return nil, structureError(kind, center, "expected 3 hydrogens, found %d", len(g.hydrogens))
	}

	g.friends = without(s.Neighbors(g.partner), center)
	if len(g.friends) != nFriends {
		return nil, structureError(kind, g.partner, "expected %d friends, found %d", nFriends, len(g.friends))
	}

	axis, ok := geom.AxisThrough(g.partner.Pos, center.Pos)
	if !ok {
		return nil, structureError(kind, g.partner, "partner and center %d coincide", center.ID)
	}
	g.axis = axis
	return g, nil
}

// place moves the first hydrogen away from the first friend, turns it by
// extra degrees, and sets the other two at +120° and -120° from it.
func (g *tripleGroup) place(extra float64) error {
	first, ok := awayFrom(g.hydrogens[0].Pos, g.axis, g.friends[0].Pos)
	if !ok {
		return structureError(g.kind, g.friends[0], "friend lies on the rotation axis")
	}
	first = geom.Rotate(first, g.axis, extra)
	g.hydrogens[0].Pos = first
	g.hydrogens[1].Pos = geom.Rotate(first, g.axis, 120)
	g.hydrogens[2].Pos = geom.Rotate(first, g.axis, -120)
	return nil
}

// awayFrom returns the point at p's distance from the axis, in the
// direction opposite friend within the plane orthogonal to the axis.
func awayFrom(p geom.Vec, axis geom.Axis, friend geom.Vec) (geom.Vec, bool) {
	dir, ok := geom.Unit(geom.Perpendicular(friend, axis))
	if !ok {
		return geom.Vec{}, false
	}
	dist := geom.Perpendicular(p, axis).Length()
	return geom.NearestOnAxis(p, axis).Sub(dir.MulScalar(dist)), true
}

func without(atoms []*structure.Atom, drop *structure.Atom) []*structure.Atom {
	out := make([]*structure.Atom, 0, len(atoms))
	for _, a := range atoms {
		if a != drop {
			out = append(out, a)
		}
	}
	return out
}
