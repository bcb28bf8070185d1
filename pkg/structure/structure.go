package structure

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/movergraph/pkg/geom"
)

var (
	// ErrUnknownAtom is returned by [Structure.AddBond] when either endpoint
	// is not an atom of the structure.
	ErrUnknownAtom = errors.New("unknown atom")

	// ErrSelfBond is returned by [Structure.AddBond] when both endpoints are
	// the same atom.
	ErrSelfBond = errors.New("atom cannot bond to itself")

	// ErrFrozen is returned by [Structure.AddAtom] and [Structure.AddBond]
	// after [Structure.Freeze]. Movers resolve their partner and friend atoms
	// once at construction, so the atom set and the bond graph must not change
	// after movers have been built from them. Coordinates may still change.
	ErrFrozen = errors.New("structure is frozen")
)

// AtomID is the stable identity of an atom: its 0-based position in the
// input structure.
type AtomID int

// Atom is one atom of a structure. Pos is the only field that changes after
// the structure is built: movers reposition their own atoms when constructed,
// and callers overwrite positions with a chosen candidate.
type Atom struct {
	ID      AtomID   // Stable identity
	Element string   // Normalized element symbol ("H", "C", "Se")
	Name    string   // Optional label (e.g. "HG1"), used in error messages
	Pos     geom.Vec // Current coordinate in Angstroms
}

// IsHydrogen reports whether the atom is a hydrogen (or deuterium).
func (a *Atom) IsHydrogen() bool {
	return a.Element == "H" || a.Element == "D"
}

// String returns a short description such as "7 (O OG)".
func (a *Atom) String() string {
	if a.Name != "" {
		return fmt.Sprintf("%d (%s %s)", a.ID, a.Element, a.Name)
	}
	return fmt.Sprintf("%d (%s)", a.ID, a.Element)
}

// Structure is a collection of atoms plus the bonded-neighbor snapshot.
//
// The zero value is not usable - use New. A Structure is not safe for
// concurrent mutation; once frozen it is safe for concurrent reads.
type Structure struct {
	atoms  []*Atom
	bonds  map[AtomID][]AtomID
	nbonds int
	frozen bool
}

// New creates an empty structure.
func New() *Structure {
	return &Structure{bonds: make(map[AtomID][]AtomID)}
}

// AddAtom appends an atom with the next free identity and returns it. The
// element symbol is normalized with [NormalizeElement].
func (s *Structure) AddAtom(element, name string, pos geom.Vec) (*Atom, error) {
	if s.frozen {
		return nil, ErrFrozen
	}
	a := &Atom{
		ID:      AtomID(len(s.atoms)),
		Element: NormalizeElement(element),
		Name:    name,
		Pos:     pos,
	}
	s.atoms = append(s.atoms, a)
	return a, nil
}

// AddBond records an undirected bond between a and b. Adding an existing
// bond again is a no-op.
func (s *Structure) AddBond(a, b AtomID) error {
	if s.frozen {
		return ErrFrozen
	}
	if !s.valid(a) {
		return fmt.Errorf("%w: %d", ErrUnknownAtom, a)
	}
	if !s.valid(b) {
		return fmt.Errorf("%w: %d", ErrUnknownAtom, b)
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfBond, a)
	}
	if slices.Contains(s.bonds[a], b) {
		return nil
	}
	s.bonds[a] = append(s.bonds[a], b)
	s.bonds[b] = append(s.bonds[b], a)
	s.nbonds++
	return nil
}

// Freeze makes the atom set and the bond graph read-only. It is idempotent.
func (s *Structure) Freeze() { s.frozen = true }

// Frozen reports whether [Structure.Freeze] has been called.
func (s *Structure) Frozen() bool { return s.frozen }

// Atom returns the atom with the given identity, or nil if there is none.
func (s *Structure) Atom(id AtomID) *Atom {
	if !s.valid(id) {
		return nil
	}
	return s.atoms[id]
}

// Atoms returns all atoms in identity order. The slice is shared; callers
// must not append to it.
func (s *Structure) Atoms() []*Atom { return s.atoms }

// AtomCount returns the number of atoms.
func (s *Structure) AtomCount() int { return len(s.atoms) }

// BondCount returns the number of distinct bonds.
func (s *Structure) BondCount() int { return s.nbonds }

// NeighborIDs returns the identities bonded to id, in the order the bonds
// were added.
func (s *Structure) NeighborIDs(id AtomID) []AtomID {
	return slices.Clone(s.bonds[id])
}

// Neighbors returns the atoms bonded to a, in the order the bonds were added.
func (s *Structure) Neighbors(a *Atom) []*Atom {
	ids := s.bonds[a.ID]
	out := make([]*Atom, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.atoms[id])
	}
	return out
}

// Degree returns the number of atoms bonded to a.
func (s *Structure) Degree(a *Atom) int { return len(s.bonds[a.ID]) }

func (s *Structure) valid(id AtomID) bool {
	return id >= 0 && int(id) < len(s.atoms)
}

// NormalizeElement converts an element symbol to its canonical case: first
// letter upper, the rest lower ("CL" → "Cl", "se" → "Se").
func NormalizeElement(e string) string {
	e = strings.TrimSpace(e)
	if e == "" {
		return e
	}
	return strings.ToUpper(e[:1]) + strings.ToLower(e[1:])
}
