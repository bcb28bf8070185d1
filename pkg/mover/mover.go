package mover

import (
	"errors"
	"fmt"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// ErrBadCoarseIndex is wrapped by the errors returned from FinePositions and
// FixUp when the coarse index does not name one of the mover's coarse
// positions.
var ErrBadCoarseIndex = errors.New("coarse index out of range")

// Mover is a group of atoms with more than one candidate placement.
//
// The set of implementations is closed: [Point], [Rotator] (with its
// hydrogen and methyl specializations) and [Flip].
type Mover interface {
	// Kind identifies the variant.
	Kind() Kind

	// Atoms returns the atoms whose coordinates the mover chooses between.
	Atoms() []*structure.Atom

	// CoarsePositions returns every coarse candidate placement.
	CoarsePositions() PositionSet

	// FinePositions returns candidates around one coarse placement, not
	// including the coarse placement itself. Movers without fine motion
	// return an empty set.
	FinePositions(coarseIndex int) (PositionSet, error)

	// FixUp returns final corrective placements to apply after the caller
	// has moved the atoms to the chosen coarse (or fine) candidate. The
	// result may name atoms beyond [Mover.Atoms].
	FixUp(coarseIndex int) (FixUpResult, error)

	sealed()
}

// Kind names a mover variant.
type Kind int

const (
	KindPoint Kind = iota
	KindRotator
	KindSingleHydrogen
	KindNH3
	KindAromaticMethyl
	KindTetrahedralMethyl
	KindFlip
)

var kindNames = [...]string{
	KindPoint:             "point",
	KindRotator:           "rotator",
	KindSingleHydrogen:    "single-hydrogen",
	KindNH3:               "nh3",
	KindAromaticMethyl:    "aromatic-methyl",
	KindTetrahedralMethyl: "tetrahedral-methyl",
	KindFlip:              "flip",
}

// String returns the lower-case kind name used in logs and exports.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// PositionSet is the result of a coarse or fine position query.
//
// Positions[i] holds one coordinate per entry of Atoms, in the same order,
// and Preferences[i] is the preference energy of that candidate. The
// optimizer adds preference energies to its score; movers never interpret
// them.
type PositionSet struct {
	Atoms       []*structure.Atom
	Positions   [][]geom.Vec
	Preferences []float64
}

// Len returns the number of candidates in the set.
func (p PositionSet) Len() int { return len(p.Positions) }

// FixUpResult lists atoms and the coordinates to move them to. An empty
// result means the atoms are already in their final positions.
type FixUpResult struct {
	Atoms     []*structure.Atom
	Positions []geom.Vec
}

// Empty reports whether the fix-up moves nothing.
func (f FixUpResult) Empty() bool { return len(f.Atoms) == 0 }

// Apply writes the fix-up positions into the atoms.
func (f FixUpResult) Apply() {
	for i, a := range f.Atoms {
		a.Pos = f.Positions[i]
	}
}

// Apply writes candidate i of the set into the atoms.
func (p PositionSet) Apply(i int) error {
	if i < 0 || i >= len(p.Positions) {
		return badIndex(i, len(p.Positions))
	}
	for j, a := range p.Atoms {
		a.Pos = p.Positions[i][j]
	}
	return nil
}

func badIndex(i, n int) error {
	return apperrors.Wrap(apperrors.ErrCodeInvalidIndex, ErrBadCoarseIndex, "index %d not in [0, %d)", i, n)
}

// structureError reports a failed bonding precondition on atom a while
// building a mover of the given kind.
func structureError(kind Kind, a *structure.Atom, format string, args ...any) error {
	return apperrors.Wrap(apperrors.ErrCodeInvalidStructure, &apperrors.AtomError{
		ID:       int(a.ID),
		Element:  a.Element,
		Name:     a.Name,
		Expected: fmt.Sprintf(format, args...),
	}, "cannot build %s mover", kind)
}

func positionsOf(atoms []*structure.Atom) []geom.Vec {
	out := make([]geom.Vec, len(atoms))
	for i, a := range atoms {
		out[i] = a.Pos
	}
	return out
}
