package placement

import (
	"github.com/matzehuels/movergraph/pkg/mover"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// Failure records a mover that matched a pattern but could not be built.
type Failure struct {
	Atom *structure.Atom // Atom the mover was anchored on
	Kind mover.Kind      // Variant that was attempted
	Err  error           // Construction error, INVALID_STRUCTURE or INVALID_CONFIG
}

// Result is the outcome of [Place].
type Result struct {
	Movers   []mover.Mover
	Failures []Failure
}

// Matches returns the number of pattern matches, built or failed.
func (r *Result) Matches() int { return len(r.Movers) + len(r.Failures) }

// Candidate is an atom and the mover variant its bonding pattern suggests.
type Candidate struct {
	Atom *structure.Atom
	Kind mover.Kind
}

type constructor func(*structure.Atom, *structure.Structure, mover.Options) (mover.Mover, error)

var constructors = map[mover.Kind]constructor{
	mover.KindSingleHydrogen: func(a *structure.Atom, s *structure.Structure, o mover.Options) (mover.Mover, error) {
		return asMover(mover.NewSingleHydrogenRotator(a, s, o))
	},
	mover.KindNH3: func(a *structure.Atom, s *structure.Structure, o mover.Options) (mover.Mover, error) {
		return asMover(mover.NewNH3Rotator(a, s, o))
	},
	mover.KindAromaticMethyl: func(a *structure.Atom, s *structure.Structure, o mover.Options) (mover.Mover, error) {
		return asMover(mover.NewAromaticMethylRotator(a, s, o))
	},
	mover.KindTetrahedralMethyl: func(a *structure.Atom, s *structure.Structure, o mover.Options) (mover.Mover, error) {
		return asMover(mover.NewTetrahedralMethylRotator(a, s, o))
	},
	mover.KindFlip: func(a *structure.Atom, s *structure.Structure, o mover.Options) (mover.Mover, error) {
		f, err := mover.NewFlip(a, s, o)
		if err != nil {
			return nil, err
		}
		return f, nil
	},
}

// asMover avoids returning a typed nil inside the interface.
func asMover(r *mover.Rotator, err error) (mover.Mover, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Place freezes s, finds every mover pattern in it and builds the movers in
// atom order. A failed construction is recorded and does not stop the scan.
//
// Movers reposition their own atoms as they are built and a later mover may
// read those positions as friend coordinates, so construction is sequential.
func Place(s *structure.Structure, opts mover.Options) *Result {
	s.Freeze()
	res := &Result{}
	for _, c := range Find(s) {
		mv, err := constructors[c.Kind](c.Atom, s, opts)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Atom: c.Atom, Kind: c.Kind, Err: err})
			continue
		}
		res.Movers = append(res.Movers, mv)
	}
	return res
}

// Find scans s in atom order and returns the anchor atom and variant of
// every mover pattern. It does not build anything or move any atom.
func Find(s *structure.Structure) []Candidate {
	var out []Candidate
	for _, a := range s.Atoms() {
		if k, ok := classify(a, s); ok {
			out = append(out, Candidate{Atom: a, Kind: k})
		}
	}
	return out
}

func classify(a *structure.Atom, s *structure.Structure) (mover.Kind, bool) {
	nbrs := s.Neighbors(a)
	switch a.Element {
	case "H", "D":
		if len(nbrs) == 1 && hydroxylLike(nbrs[0].Element) {
			return mover.KindSingleHydrogen, true
		}
	case "N":
		hs, heavy := split(nbrs)
		switch {
		case len(hs) == 3 && len(heavy) == 1:
			return mover.KindNH3, true
		case len(hs) == 2 && len(heavy) == 1 && heavy[0].Element == "C" && carbonylLike(heavy[0], a, s):
			return mover.KindFlip, true
		}
	case "C":
		hs, heavy := split(nbrs)
		if len(hs) == 3 && len(heavy) == 1 {
			if s.Degree(heavy[0]) == 3 {
				return mover.KindAromaticMethyl, true
			}
			return mover.KindTetrahedralMethyl, true
		}
	}
	return 0, false
}

func hydroxylLike(element string) bool {
	return element == "O" || element == "S" || element == "Se"
}

// carbonylLike reports whether c carries exactly one terminal oxygen besides n.
func carbonylLike(c, n *structure.Atom, s *structure.Structure) bool {
	terminals := 0
	for _, o := range s.Neighbors(c) {
		if o != n && o.Element == "O" && s.Degree(o) == 1 {
			terminals++
		}
	}
	return terminals == 1
}

func split(atoms []*structure.Atom) (hydrogens, heavy []*structure.Atom) {
	for _, a := range atoms {
		if a.IsHydrogen() {
			hydrogens = append(hydrogens, a)
		} else {
			heavy = append(heavy, a)
		}
	}
	return hydrogens, heavy
}
