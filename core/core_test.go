package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/core"
)

// TestAddVertex_Validation covers empty IDs and idempotent insertion.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.NoError(t, g.AddVertex("A"))
	assert.NoError(t, g.AddVertex("A")) // re-adding is a no-op
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestAddEdge_WeightPolicy ensures unweighted graphs reject non-zero weights.
func TestAddEdge_WeightPolicy(t *testing.T) {
	g := core.NewGraph() // unweighted by default
	assert.ErrorIs(t, g.AddEdge("A", "B", 3), core.ErrBadWeight)
	assert.NoError(t, g.AddEdge("A", "B", 0))

	// Unweighted lookups report the uniform default.
	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, core.DefaultEdgeWeight, w)
}

// TestAddEdge_LoopPolicy verifies self-loop gating.
func TestAddEdge_LoopPolicy(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	assert.ErrorIs(t, g.AddEdge("X", "X", 1), core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithWeighted(), core.WithLoops())
	assert.NoError(t, gl.AddEdge("X", "X", 1))
}

// TestAddEdge_MixedPolicy verifies per-edge overrides require mixed mode.
func TestAddEdge_MixedPolicy(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	err := g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	gm := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())
	assert.NoError(t, gm.AddEdge("A", "B", 1, core.WithEdgeDirected(true)))
	assert.True(t, gm.HasEdge("A", "B"))
	assert.False(t, gm.HasEdge("B", "A"))
}

// TestNeighbors_UndirectedMirroring checks that undirected edges are visible
// from both endpoints with normalized From fields.
func TestNeighbors_UndirectedMirroring(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 2))

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)
	assert.Equal(t, "A", fromA[0].From)
	assert.Equal(t, "B", fromA[0].To)

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, "B", fromB[0].From)
	assert.Equal(t, "A", fromB[0].To)
	assert.Equal(t, 2.0, g.EdgeWeight(fromB[0]))
}

// TestNeighbors_DirectedOnlyOutgoing ensures directed edges never appear in
// the destination's neighbor list.
func TestNeighbors_DirectedOnlyOutgoing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, fromB)
}

// TestNeighbors_Errors covers the validation path.
func TestNeighbors_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestVertices_Sorted checks the determinism contract.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

// TestEdges_UndirectedReportedOnce verifies Edges() deduplicates mirrors.
func TestEdges_UndirectedReportedOnce(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("B", "A", 4))
	require.NoError(t, g.AddEdge("B", "C", 5))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, 2, g.EdgeCount())
	// Sorted by (From, To); B—A normalized to A—B via the mirror copy.
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
}

// TestAddEdge_ReplacesWeight confirms re-adding an edge updates its weight.
func TestAddEdge_ReplacesWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 9))

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestClone_Independence mutates a clone and checks the original is intact.
func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge("B", "C", 2))
	require.NoError(t, c.AddEdge("A", "B", 7)) // replace on the clone

	assert.False(t, g.HasVertex("C"))
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 1.0, w)

	cw, _ := c.Weight("A", "B")
	assert.Equal(t, 7.0, cw)
	assert.True(t, c.Directed())
	assert.True(t, c.Weighted())
}

// TestCloneEmpty_KeepsVerticesDropsEdges verifies flag and vertex carry-over.
func TestCloneEmpty_KeepsVerticesDropsEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	require.NoError(t, g.AddEdge("A", "B", 3))

	c := g.CloneEmpty()
	assert.True(t, c.HasVertex("A"))
	assert.True(t, c.HasVertex("B"))
	assert.False(t, c.HasEdge("A", "B"))
	assert.True(t, c.Weighted())
	assert.True(t, c.Looped())
}
