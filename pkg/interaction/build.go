package interaction

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/mover"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// DefaultProbeRadius is the contact probe radius in Angstroms.
const DefaultProbeRadius = 0.25

// Algorithm selects how edges are decided.
type Algorithm string

const (
	// AlgorithmApproximate joins movers whose bounding boxes overlap.
	AlgorithmApproximate Algorithm = "approximate"
	// AlgorithmExact joins movers with at least one pair of atoms in contact.
	AlgorithmExact Algorithm = "exact"
)

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a == AlgorithmApproximate || a == AlgorithmExact
}

// Options configures graph construction.
type Options struct {
	// ProbeRadius dilates every atom. Values below zero count as zero.
	ProbeRadius float64
	// Workers bounds the goroutines used by the exact build. Zero means
	// GOMAXPROCS.
	Workers int
}

// DefaultOptions returns options with the default probe radius.
func DefaultOptions() Options {
	return Options{ProbeRadius: DefaultProbeRadius}
}

func (o Options) probe() float64 { return max(o.ProbeRadius, 0) }

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Build dispatches to [BuildApproximate] or [BuildExact].
func Build(alg Algorithm, movers []mover.Mover, radii structure.RadiusLookup, opts Options) (*Graph, error) {
	switch alg {
	case AlgorithmApproximate:
		return BuildApproximate(movers, radii, opts)
	case AlgorithmExact:
		return BuildExact(movers, radii, opts)
	}
	return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown graph algorithm %q", alg)
}

// candidate is one placement of a set of atoms.
type candidate struct {
	atoms     []*structure.Atom
	positions []geom.Vec
}

// collectCandidates returns every coarse placement of m followed by every
// fine placement around each coarse one.
func collectCandidates(m mover.Mover) ([]candidate, error) {
	coarse := m.CoarsePositions()
	out := make([]candidate, 0, coarse.Len())
	for _, p := range coarse.Positions {
		out = append(out, candidate{atoms: coarse.Atoms, positions: p})
	}
	for i := range coarse.Positions {
		fine, err := m.FinePositions(i)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "fine positions of %s mover", m.Kind())
		}
		for _, p := range fine.Positions {
			out = append(out, candidate{atoms: fine.Atoms, positions: p})
		}
	}
	return out, nil
}

// moverBox encloses every atom of every candidate, each grown by its radius,
// then dilated by probe.
func moverBox(cands []candidate, radii structure.RadiusLookup, probe float64) geom.Box {
	box := geom.EmptyBox()
	for _, c := range cands {
		for j, a := range c.atoms {
			box = box.IncludeSphere(c.positions[j], radii.Radius(a.ID))
		}
	}
	return box.Dilate(probe)
}

type prepared struct {
	cands [][]candidate
	boxes []geom.Box
}

func prepare(movers []mover.Mover, radii structure.RadiusLookup, probe float64) (*prepared, error) {
	p := &prepared{
		cands: make([][]candidate, len(movers)),
		boxes: make([]geom.Box, len(movers)),
	}
	for i, m := range movers {
		c, err := collectCandidates(m)
		if err != nil {
			return nil, err
		}
		p.cands[i] = c
		p.boxes[i] = moverBox(c, radii, probe)
	}
	return p, nil
}

// BuildApproximate joins movers i<j when their bounding boxes overlap on all
// three axes. The result is a superset of [BuildExact] for the same inputs.
func BuildApproximate(movers []mover.Mover, radii structure.RadiusLookup, opts Options) (*Graph, error) {
	p, err := prepare(movers, radii, opts.probe())
	if err != nil {
		return nil, err
	}
	g := newGraph(movers)
	for i := range movers {
		var row []int
		for j := i + 1; j < len(movers); j++ {
			if p.boxes[i].Overlaps(p.boxes[j]) {
				row = append(row, j)
			}
		}
		g.addRow(i, row)
	}
	return g, nil
}

// BuildExact joins movers i<j when some candidate of each places a pair of
// their atoms within r1 + r2 + 2·probe of each other. Rows are evaluated
// concurrently and merged in order, so the result does not depend on
// scheduling.
func BuildExact(movers []mover.Mover, radii structure.RadiusLookup, opts Options) (*Graph, error) {
	probe := opts.probe()
	p, err := prepare(movers, radii, probe)
	if err != nil {
		return nil, err
	}

	rows := make([][]int, len(movers))
	var eg errgroup.Group
	eg.SetLimit(opts.workers())
	for i := range movers {
		eg.Go(func() error {
			for j := i + 1; j < len(movers); j++ {
				// Boxes are a superset test, so skipping on a miss is exact.
				if !p.boxes[i].Overlaps(p.boxes[j]) {
					continue
				}
				if touching(p.cands[i], p.cands[j], radii, probe) {
					rows[i] = append(rows[i], j)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g := newGraph(movers)
	for i, row := range rows {
		g.addRow(i, row)
	}
	return g, nil
}

// touching reports whether any candidate pair brings two atoms into contact.
func touching(a, b []candidate, radii structure.RadiusLookup, probe float64) bool {
	for _, ca := range a {
		for _, cb := range b {
			for ia, atomA := range ca.atoms {
				ra := radii.Radius(atomA.ID) + probe
				for ib, atomB := range cb.atoms {
					limit := ra + radii.Radius(atomB.ID) + probe
					if geom.Distance2(ca.positions[ia], cb.positions[ib]) <= limit*limit {
						return true
					}
				}
			}
		}
	}
	return false
}
