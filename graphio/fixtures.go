package graphio

import "github.com/katalvlaran/pathbench/core"

// SimpleWeighted returns the canonical directed benchmark graph:
//
//	A→B(1), A→C(4), B→C(2), B→D(5), C→D(1), D→E(3)
//
// Every compliant algorithm answers query (A, E) with path [A B C D E] and
// cost 7.
func SimpleWeighted() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustAddEdges(g, []edgeSpec{
		{"A", "B", 1},
		{"A", "C", 4},
		{"B", "C", 2},
		{"B", "D", 5},
		{"C", "D", 1},
		{"D", "E", 3},
	})

	return g
}

// NegativeWeight returns a directed graph carrying one negative edge but no
// negative cycle:
//
//	A→B(4), A→C(2), B→C(-3), C→D(2)
//
// Algorithms supporting negative weights answer query (A, D) with path
// [A B C D] and cost 3; label-setting algorithms are exempt by contract.
func NegativeWeight() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustAddEdges(g, []edgeSpec{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", -3},
		{"C", "D", 2},
	})

	return g
}

// Disconnected returns an undirected graph of two components {A,B} and
// {C,D} with no connecting edge. Every algorithm answers query (A, D) with
// the no-path sentinel.
func Disconnected() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	mustAddEdges(g, []edgeSpec{
		{"A", "B", 1},
		{"C", "D", 1},
	})

	return g
}

// edgeSpec is a compact (from, to, weight) triple for fixture construction.
type edgeSpec struct {
	from, to string
	weight   float64
}

// mustAddEdges inserts the triples, panicking on failure. Fixture graphs are
// static, so an insertion error is a programming bug, not a runtime state.
func mustAddEdges(g *core.Graph, edges []edgeSpec) {
	for _, e := range edges {
		if err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			panic("graphio: fixture edge " + e.from + "→" + e.to + ": " + err.Error())
		}
	}
}
