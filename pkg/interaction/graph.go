package interaction

import (
	"slices"

	"github.com/matzehuels/movergraph/pkg/mover"
)

// Node is one mover in the graph. Index is the mover's position in the
// slice passed to the builder.
type Node struct {
	Index int
	Mover mover.Mover
}

// Edge joins two movers that may overlap. From is always less than To.
type Edge struct {
	From int
	To   int
}

// Graph is an undirected graph with one node per mover. An edge means the
// two movers may occupy overlapping volume in some combination of their
// candidate placements.
//
// Graphs are immutable once built and safe for concurrent reads.
type Graph struct {
	nodes []Node
	adj   [][]int // sorted ascending
	edges int
}

func newGraph(movers []mover.Mover) *Graph {
	g := &Graph{
		nodes: make([]Node, len(movers)),
		adj:   make([][]int, len(movers)),
	}
	for i, m := range movers {
		g.nodes[i] = Node{Index: i, Mover: m}
	}
	return g
}

// addRow records the edges from node i to every node in higher, which must
// be ascending and greater than i. Rows must be added in ascending i so
// every adjacency list stays sorted.
func (g *Graph) addRow(i int, higher []int) {
	for _, j := range higher {
		g.adj[i] = append(g.adj[i], j)
		g.adj[j] = append(g.adj[j], i)
		g.edges++
	}
}

// Nodes returns the nodes in input order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// NodeCount returns the number of movers.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Mover returns the mover of node i.
func (g *Graph) Mover(i int) mover.Mover { return g.nodes[i].Mover }

// Neighbors returns the nodes adjacent to i in ascending order.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= len(g.adj) {
		return nil
	}
	return slices.Clone(g.adj[i])
}

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adj) {
		return false
	}
	_, found := slices.BinarySearch(g.adj[i], j)
	return found
}

// Edges returns every edge once, ordered by From then To.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			if j > i {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}
	return out
}

// Components partitions the nodes into connected components. Each component
// is sorted ascending and components are ordered by their smallest node.
// Isolated nodes form singleton components.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int
	for start := range g.nodes {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []int{start}
		for q := 0; q < len(comp); q++ {
			for _, n := range g.adj[comp[q]] {
				if !seen[n] {
					seen[n] = true
					comp = append(comp, n)
				}
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps
}

// LargestComponent returns the size of the largest connected component, or
// 0 for an empty graph.
func (g *Graph) LargestComponent() int {
	largest := 0
	for _, c := range g.Components() {
		largest = max(largest, len(c))
	}
	return largest
}
