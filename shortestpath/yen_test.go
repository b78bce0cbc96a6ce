package shortestpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/graphio"
	sp "github.com/katalvlaran/pathbench/shortestpath"
)

// diamondGraph holds exactly three simple paths from A to D:
// A→B→D (2), A→C→D (3), A→D (4).
func diamondGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 2))
	require.NoError(t, g.AddEdge("A", "D", 4))

	return g
}

func TestKShortest_Diamond(t *testing.T) {
	g := diamondGraph(t)

	paths, err := sp.KShortest(context.Background(), g, "A", "D", 3)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, []string{"A", "B", "D"}, paths[0].Path)
	assert.Equal(t, 2.0, paths[0].Cost)
	assert.Equal(t, []string{"A", "C", "D"}, paths[1].Path)
	assert.Equal(t, 3.0, paths[1].Cost)
	assert.Equal(t, []string{"A", "D"}, paths[2].Path)
	assert.Equal(t, 4.0, paths[2].Cost)
}

func TestKShortest_FirstMatchesDijkstra(t *testing.T) {
	g := graphio.SimpleWeighted()

	paths, err := sp.KShortest(context.Background(), g, "A", "E", 1)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	direct, err := sp.Dijkstra(context.Background(), g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, direct, paths[0])
}

func TestKShortest_FewerPathsThanK(t *testing.T) {
	g := diamondGraph(t)

	// Only three simple paths exist; asking for ten is not an error.
	paths, err := sp.KShortest(context.Background(), g, "A", "D", 10)
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestKShortest_NondecreasingAndDistinct(t *testing.T) {
	g := graphio.SimpleWeighted()

	paths, err := sp.KShortest(context.Background(), g, "A", "E", 5)
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	seen := make(map[string]bool)
	for i, p := range paths {
		if i > 0 {
			assert.GreaterOrEqual(t, p.Cost, paths[i-1].Cost)
		}
		key := ""
		for _, v := range p.Path {
			key += v + "/"
		}
		assert.False(t, seen[key], "duplicate path %v", p.Path)
		seen[key] = true
	}
}

func TestKShortest_Boundaries(t *testing.T) {
	g := diamondGraph(t)

	t.Run("bad k", func(t *testing.T) {
		_, err := sp.KShortest(context.Background(), g, "A", "D", 0)
		assert.ErrorIs(t, err, sp.ErrBadK)
	})

	t.Run("no path", func(t *testing.T) {
		paths, err := sp.KShortest(context.Background(), graphio.Disconnected(), "A", "D", 3)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("start equals end", func(t *testing.T) {
		paths, err := sp.KShortest(context.Background(), g, "A", "A", 3)
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, []string{"A"}, paths[0].Path)
		assert.Zero(t, paths[0].Cost)
	})

	t.Run("nil graph", func(t *testing.T) {
		_, err := sp.KShortest(context.Background(), nil, "A", "D", 3)
		assert.ErrorIs(t, err, sp.ErrGraphNil)
	})
}
