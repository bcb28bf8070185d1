package interaction

import (
	"slices"
	"testing"

	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/mover"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// handGraph builds a graph over n point movers with the given rows.
func handGraph(t *testing.T, n int, rows map[int][]int) *Graph {
	t.Helper()
	s := structure.New()
	movers := make([]mover.Mover, n)
	for i := range movers {
		a, _ := s.AddAtom("C", "", geom.Vec{X: float64(i)})
		movers[i] = mover.NewPoint(a)
	}
	g := newGraph(movers)
	for i := 0; i < n; i++ {
		g.addRow(i, rows[i])
	}
	return g
}

func TestGraphQueries(t *testing.T) {
	g := handGraph(t, 6, map[int][]int{
		0: {3},
		1: {4, 5},
		3: {5},
	})

	if got := g.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount() = %d, want 4", got)
	}
	wantEdges := []Edge{{0, 3}, {1, 4}, {1, 5}, {3, 5}}
	if got := g.Edges(); !slices.Equal(got, wantEdges) {
		t.Errorf("Edges() = %v, want %v", got, wantEdges)
	}
	if got := g.Neighbors(5); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("Neighbors(5) = %v, want [1 3]", got)
	}
	if g.Neighbors(-1) != nil || g.Neighbors(6) != nil {
		t.Error("Neighbors() of a missing node is not nil")
	}

	tests := []struct {
		i, j int
		want bool
	}{
		{0, 3, true},
		{3, 0, true},
		{5, 1, true},
		{0, 1, false},
		{2, 2, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		if got := g.HasEdge(tt.i, tt.j); got != tt.want {
			t.Errorf("HasEdge(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestGraphComponents(t *testing.T) {
	tests := []struct {
		name string
		n    int
		rows map[int][]int
		want [][]int
	}{
		{
			name: "chain through high index",
			n:    6,
			rows: map[int][]int{0: {3}, 1: {4, 5}, 3: {5}},
			want: [][]int{{0, 1, 3, 4, 5}, {2}},
		},
		{
			name: "all isolated",
			n:    3,
			want: [][]int{{0}, {1}, {2}},
		},
		{
			name: "two pairs",
			n:    4,
			rows: map[int][]int{0: {2}, 1: {3}},
			want: [][]int{{0, 2}, {1, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := handGraph(t, tt.n, tt.rows)
			got := g.Components()
			if !slices.EqualFunc(got, tt.want, slices.Equal[[]int]) {
				t.Errorf("Components() = %v, want %v", got, tt.want)
			}
		})
	}
}
