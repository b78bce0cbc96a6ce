package shortestpath_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/graphio"
	sp "github.com/katalvlaran/pathbench/shortestpath"
)

// allAlgorithms is every Func in the package, keyed for subtest naming.
var allAlgorithms = map[string]sp.Func{
	"dijkstra":       sp.Dijkstra,
	"astar":          sp.AStar,
	"bellman-ford":   sp.BellmanFord,
	"spfa":           sp.SPFA,
	"bidirectional":  sp.BidirectionalDijkstra,
	"dag":            sp.DAGShortestPath,
	"floyd-warshall": sp.FloydWarshall,
	"johnson":        sp.Johnson,
	"yen":            sp.Yen,
}

// negativeCapable also tolerates negative edge weights (absent negative
// cycles).
var negativeCapable = map[string]sp.Func{
	"bellman-ford":   sp.BellmanFord,
	"spfa":           sp.SPFA,
	"floyd-warshall": sp.FloydWarshall,
	"johnson":        sp.Johnson,
}

func TestAllAlgorithms_SimpleWeighted(t *testing.T) {
	g := graphio.SimpleWeighted()

	for name, fn := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			res, err := fn(context.Background(), g, "A", "E")
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Path)
			assert.Equal(t, 7.0, res.Cost)
			assert.True(t, res.Found())
			assert.Equal(t, 5, res.Len())
		})
	}
}

func TestAllAlgorithms_NoPath(t *testing.T) {
	g := graphio.Disconnected()

	for name, fn := range allAlgorithms {
		if name == "dag" {
			continue // undirected fixture; covered by TestDAGShortestPath_NoPath
		}
		t.Run(name, func(t *testing.T) {
			res, err := fn(context.Background(), g, "A", "D")
			require.NoError(t, err)
			assert.Nil(t, res.Path)
			assert.True(t, math.IsInf(res.Cost, 1))
			assert.False(t, res.Found())
			assert.Zero(t, res.Len())
		})
	}
}

func TestDAGShortestPath_NoPath(t *testing.T) {
	// Directed two-component graph: acyclic, but D is unreachable from A.
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := sp.DAGShortestPath(context.Background(), g, "A", "D")
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.False(t, res.Found())
}

func TestAllAlgorithms_StartEqualsEnd(t *testing.T) {
	g := graphio.SimpleWeighted()

	for name, fn := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			res, err := fn(context.Background(), g, "C", "C")
			require.NoError(t, err)
			assert.Equal(t, []string{"C"}, res.Path)
			assert.Zero(t, res.Cost)
		})
	}
}

func TestAllAlgorithms_Validation(t *testing.T) {
	g := graphio.SimpleWeighted()

	for name, fn := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			_, err := fn(context.Background(), nil, "A", "E")
			assert.ErrorIs(t, err, sp.ErrGraphNil)

			_, err = fn(context.Background(), g, "", "E")
			assert.ErrorIs(t, err, sp.ErrEmptyEndpoint)

			_, err = fn(context.Background(), g, "A", "")
			assert.ErrorIs(t, err, sp.ErrEmptyEndpoint)

			_, err = fn(context.Background(), g, "A", "Z")
			assert.ErrorIs(t, err, sp.ErrVertexNotFound)

			_, err = fn(context.Background(), g, "Z", "E")
			assert.ErrorIs(t, err, sp.ErrVertexNotFound)
		})
	}
}

func TestAllAlgorithms_Idempotent(t *testing.T) {
	g := graphio.SimpleWeighted()

	for name, fn := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			first, err := fn(context.Background(), g, "A", "E")
			require.NoError(t, err)
			second, err := fn(context.Background(), g, "A", "E")
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestAllAlgorithms_ContextCancelled(t *testing.T) {
	g := graphio.SimpleWeighted()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, fn := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			_, err := fn(ctx, g, "A", "E")
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestAllAlgorithms_UnweightedDefaultsToUnit(t *testing.T) {
	// Unweighted graph: every edge costs DefaultEdgeWeight, so the shortest
	// path is the fewest-hops path A→D (cost 2) rather than A→B→C→D.
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "X"}, {"X", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	for name, fn := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			res, err := fn(context.Background(), g, "A", "D")
			require.NoError(t, err)
			assert.Equal(t, 2.0, res.Cost)
			assert.Len(t, res.Path, 3)
		})
	}
}

func TestNegativeCapable_NegativeWeight(t *testing.T) {
	g := graphio.NegativeWeight()

	for name, fn := range negativeCapable {
		t.Run(name, func(t *testing.T) {
			res, err := fn(context.Background(), g, "A", "D")
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
			assert.Equal(t, 3.0, res.Cost)
		})
	}
}

func TestNegativeCapable_NegativeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", -2))
	require.NoError(t, g.AddEdge("C", "A", -2))
	require.NoError(t, g.AddEdge("C", "D", 1))

	for name, fn := range negativeCapable {
		t.Run(name, func(t *testing.T) {
			_, err := fn(context.Background(), g, "A", "D")
			assert.ErrorIs(t, err, sp.ErrNegativeCycle)
		})
	}
}

func TestDAGShortestPath_RejectsCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))

	_, err := sp.DAGShortestPath(context.Background(), g, "A", "C")
	assert.ErrorIs(t, err, sp.ErrNotDAG)
}

func TestAStar_CoordinateHeuristic(t *testing.T) {
	// Vertex IDs carry coordinates, so the Euclidean heuristic is active and
	// admissible (edge weights equal the geometric distances).
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("0,0", "1,0", 1))
	require.NoError(t, g.AddEdge("1,0", "2,0", 1))
	require.NoError(t, g.AddEdge("0,0", "0,5", 5))
	require.NoError(t, g.AddEdge("0,5", "2,0", 5.4))

	res, err := sp.AStar(context.Background(), g, "0,0", "2,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "2,0"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)

	// Underscore-separated IDs parse the same way.
	assert.Equal(t, 5.0, sp.EuclideanHeuristic("0_0", "3_4"))
	// Non-coordinate IDs fall back to the zero heuristic.
	assert.Zero(t, sp.EuclideanHeuristic("left", "right"))
}

func TestAStarWith_CustomHeuristic(t *testing.T) {
	g := graphio.SimpleWeighted()

	fn := sp.AStarWith(func(_, _ string) float64 { return 0 })
	res, err := fn(context.Background(), g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Cost)
}

func TestUndirectedTraversal(t *testing.T) {
	// Undirected edges are walkable both ways.
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 2))

	for name, fn := range allAlgorithms {
		if name == "dag" {
			continue // undirected graphs are cyclic by construction
		}
		t.Run(name, func(t *testing.T) {
			res, err := fn(context.Background(), g, "C", "A")
			require.NoError(t, err)
			assert.Equal(t, []string{"C", "B", "A"}, res.Path)
			assert.Equal(t, 4.0, res.Cost)
		})
	}
}
