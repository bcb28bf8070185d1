package graph

import (
	"github.com/matzehuels/movergraph/pkg/interaction"
	"github.com/matzehuels/movergraph/pkg/placement"
)

// =============================================================================
// Plan - Interaction Graph Serialization
// =============================================================================

// Plan is the serialization format of one placement run: the movers that
// were built, the interaction graph between them, its connected components,
// and the candidates that could not be built.
//
// Movers are listed by graph index, edges with From < To in ascending order,
// and components in order of their lowest member, so the same run always
// produces the same document.
type Plan struct {
	Algorithm   string    `json:"algorithm,omitempty"`
	ProbeRadius float64   `json:"probe_radius"`
	Movers      []Mover   `json:"movers"`
	Edges       []Edge    `json:"edges"`
	Components  [][]int   `json:"components"`
	Failures    []Failure `json:"failures,omitempty"`
}

// Mover describes one node of the interaction graph.
type Mover struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Atoms  []int  `json:"atoms"`  // Controlled atom IDs
	Coarse int    `json:"coarse"` // Number of coarse positions
	Fine   int    `json:"fine"`   // Fine positions summed over every coarse position
}

// Edge joins two movers by graph index.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Failure describes a candidate whose mover could not be built.
type Failure struct {
	Atom    int    `json:"atom"`
	Element string `json:"element"`
	Name    string `json:"name,omitempty"`
	Kind    string `json:"kind"`
	Error   string `json:"error"`
}

// LargestComponent returns the size of the largest component, or 0.
func (p Plan) LargestComponent() int {
	n := 0
	for _, c := range p.Components {
		n = max(n, len(c))
	}
	return n
}

// =============================================================================
// interaction.Graph → Plan Conversion
// =============================================================================

// FromInteraction converts g and the failed candidates of the same run to a
// Plan. Algorithm and ProbeRadius are left for the caller to fill in.
func FromInteraction(g *interaction.Graph, failures []placement.Failure) (Plan, error) {
	out := Plan{
		Movers:     make([]Mover, 0, g.NodeCount()),
		Edges:      make([]Edge, 0, g.EdgeCount()),
		Components: g.Components(),
	}
	for _, n := range g.Nodes() {
		m, err := moverFrom(n)
		if err != nil {
			return Plan{}, err
		}
		out.Movers = append(out.Movers, m)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{From: e.From, To: e.To})
	}
	if out.Components == nil {
		out.Components = [][]int{}
	}
	for _, f := range failures {
		out.Failures = append(out.Failures, Failure{
			Atom:    int(f.Atom.ID),
			Element: f.Atom.Element,
			Name:    f.Atom.Name,
			Kind:    f.Kind.String(),
			Error:   f.Err.Error(),
		})
	}
	return out, nil
}

func moverFrom(n interaction.Node) (Mover, error) {
	m := Mover{Index: n.Index, Kind: n.Mover.Kind().String()}
	for _, a := range n.Mover.Atoms() {
		m.Atoms = append(m.Atoms, int(a.ID))
	}
	coarse := n.Mover.CoarsePositions()
	m.Coarse = coarse.Len()
	for i := 0; i < coarse.Len(); i++ {
		fine, err := n.Mover.FinePositions(i)
		if err != nil {
			return Mover{}, err
		}
		m.Fine += fine.Len()
	}
	return m, nil
}
