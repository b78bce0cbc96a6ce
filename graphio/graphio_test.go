package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/graphio"
)

func TestFixtures(t *testing.T) {
	t.Run("simple weighted", func(t *testing.T) {
		g := graphio.SimpleWeighted()
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())
		assert.Equal(t, 6, g.EdgeCount())

		w, ok := g.Weight("A", "B")
		require.True(t, ok)
		assert.Equal(t, 1.0, w)
	})

	t.Run("negative weight", func(t *testing.T) {
		g := graphio.NegativeWeight()
		w, ok := g.Weight("B", "C")
		require.True(t, ok)
		assert.Equal(t, -3.0, w)
	})

	t.Run("disconnected", func(t *testing.T) {
		g := graphio.Disconnected()
		assert.True(t, g.HasEdge("A", "B"))
		assert.False(t, g.HasEdge("B", "C"))
		// Undirected: the mirror direction exists too.
		assert.True(t, g.HasEdge("B", "A"))
	})
}

func TestLoadCSV(t *testing.T) {
	const doc = "source,target,weight\nA,B,1\nA,C,4\nB,C,2\n"

	g, err := graphio.LoadCSV(strings.NewReader(doc), true)
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	w, ok := g.Weight("A", "C")
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
	// Directed: no reverse arc.
	assert.False(t, g.HasEdge("B", "A"))
}

func TestLoadCSV_ColumnOrderAndDefaults(t *testing.T) {
	// Free column order, extra columns ignored, empty weight defaults to 1.
	const doc = "label,target,source,weight\nx,B,A,\ny,C,B,2.5\n"

	g, err := graphio.LoadCSV(strings.NewReader(doc), false)
	require.NoError(t, err)

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)

	w, ok = g.Weight("C", "B")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Run("missing columns", func(t *testing.T) {
		_, err := graphio.LoadCSV(strings.NewReader("from,to\nA,B\n"), true)
		assert.ErrorIs(t, err, graphio.ErrBadHeader)
	})

	t.Run("bad weight", func(t *testing.T) {
		_, err := graphio.LoadCSV(strings.NewReader("source,target,weight\nA,B,heavy\n"), true)
		assert.ErrorIs(t, err, graphio.ErrBadRecord)
	})
}

func TestCSV_RoundTrip(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, graphio.WriteCSV(&sb, graphio.SimpleWeighted()))

	reloaded, err := graphio.LoadCSV(strings.NewReader(sb.String()), true)
	require.NoError(t, err)

	orig := graphio.SimpleWeighted()
	assert.Equal(t, orig.Vertices(), reloaded.Vertices())
	assert.Equal(t, orig.EdgeCount(), reloaded.EdgeCount())
	for _, e := range orig.Edges() {
		w, ok := reloaded.Weight(e.From, e.To)
		require.True(t, ok, "edge %s→%s lost", e.From, e.To)
		assert.Equal(t, orig.EdgeWeight(e), w)
	}
}

func TestRandomGraph(t *testing.T) {
	opts := graphio.RandomOptions{
		NumVertices: 50,
		EdgeProb:    0.2,
		Directed:    true,
		MaxWeight:   10,
		Seed:        7,
	}

	g1, err := graphio.RandomGraph(opts)
	require.NoError(t, err)
	g2, err := graphio.RandomGraph(opts)
	require.NoError(t, err)

	// Same seed, same graph.
	assert.Equal(t, g1.Vertices(), g2.Vertices())
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	assert.Equal(t, 50, g1.VertexCount())

	// Different seed, (almost surely) different edge set.
	opts.Seed = 8
	g3, err := graphio.RandomGraph(opts)
	require.NoError(t, err)
	assert.NotEqual(t, g1.EdgeCount(), 0)
	assert.NotEqual(t, g1.Edges(), g3.Edges())
}

func TestRandomGraph_Validation(t *testing.T) {
	_, err := graphio.RandomGraph(graphio.RandomOptions{NumVertices: 1, EdgeProb: 0.5})
	assert.ErrorIs(t, err, graphio.ErrTooFewVertices)

	_, err = graphio.RandomGraph(graphio.RandomOptions{NumVertices: 10, EdgeProb: 1.5})
	assert.ErrorIs(t, err, graphio.ErrBadProbability)

	_, err = graphio.RandomGraph(graphio.RandomOptions{NumVertices: 10, EdgeProb: -0.1})
	assert.ErrorIs(t, err, graphio.ErrBadProbability)
}

func TestRandomQuery(t *testing.T) {
	g, err := graphio.RandomGraph(graphio.RandomOptions{NumVertices: 20, EdgeProb: 0.3, Seed: 1})
	require.NoError(t, err)

	s1, e1, err := graphio.RandomQuery(g, 5)
	require.NoError(t, err)
	s2, e2, err := graphio.RandomQuery(g, 5)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
	assert.NotEqual(t, s1, e1)
	assert.True(t, g.HasVertex(s1))
	assert.True(t, g.HasVertex(e1))
}
