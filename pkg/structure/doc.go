// Package structure holds the atoms of a molecular structure and the
// bonded-neighbor snapshot that movers are derived from.
//
// # Lifecycle
//
// A [Structure] is built by adding atoms and bonds, then frozen before any
// mover is constructed from it:
//
//	s := structure.New()
//	o, _ := s.AddAtom("O", "OH", geom.Vec{})
//	h, _ := s.AddAtom("H", "HO", geom.Vec{X: 0.96})
//	_ = s.AddBond(o.ID, h.ID)
//	s.Freeze()
//
// After [Structure.Freeze] the atom set and bond graph are read-only and
// [ErrFrozen] is returned by any attempt to change them. Atom coordinates
// remain writable: movers place their own atoms in a canonical orientation
// when they are built, and the optimizer later writes chosen candidates back.
//
// # Radii
//
// Radii are not stored on atoms. They are looked up by identity through a
// [RadiusLookup], so the interaction graph builder can be driven by
// [ElementRadii] (van der Waals radii by element), a [RadiusTable] or a
// [UniformRadius].
package structure
