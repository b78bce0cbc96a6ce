package graphio

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathbench/core"
)

// Sentinel errors for graph generation and query selection.
var (
	// ErrTooFewVertices is returned when a generator or query selector needs
	// more vertices than the caller provided.
	ErrTooFewVertices = errors.New("graphio: graph must have at least 2 vertices")

	// ErrBadProbability is returned for an edge probability outside [0, 1].
	ErrBadProbability = errors.New("graphio: edge probability must be in [0, 1]")
)

// RandomOptions configures RandomGraph.
type RandomOptions struct {
	// NumVertices is the number of vertices, named "0".."n-1". Must be ≥ 2.
	NumVertices int

	// EdgeProb is the independent probability of each candidate edge.
	EdgeProb float64

	// Directed makes the generated graph directed; each kept pair also gets
	// the reverse edge with probability 0.5.
	Directed bool

	// MaxWeight caps random integer weights, drawn uniformly from [1, MaxWeight].
	// Values < 1 default to 10.
	MaxWeight int

	// Seed fixes the random stream so generated graphs are reproducible.
	Seed int64
}

// RandomGraph generates a weighted random graph from the given options.
// The generator is fully deterministic for a fixed Seed.
// Complexity: O(V^2).
func RandomGraph(opts RandomOptions) (*core.Graph, error) {
	if opts.NumVertices < 2 {
		return nil, ErrTooFewVertices
	}
	if opts.EdgeProb < 0 || opts.EdgeProb > 1 {
		return nil, ErrBadProbability
	}
	maxWeight := opts.MaxWeight
	if maxWeight < 1 {
		maxWeight = 10
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	graphOpts := []core.GraphOption{core.WithWeighted()}
	if opts.Directed {
		graphOpts = append(graphOpts, core.WithDirected(true))
	}
	g := core.NewGraph(graphOpts...)

	// Register all vertices first so isolated ones still exist.
	for i := 0; i < opts.NumVertices; i++ {
		if err := g.AddVertex(fmt.Sprintf("%d", i)); err != nil {
			return nil, err
		}
	}

	// Sample each unordered pair once; directed graphs may add the reverse
	// edge with an independent coin flip.
	for u := 0; u < opts.NumVertices; u++ {
		for v := u + 1; v < opts.NumVertices; v++ {
			if rng.Float64() >= opts.EdgeProb {
				continue
			}
			w := float64(rng.Intn(maxWeight) + 1)
			from, to := fmt.Sprintf("%d", u), fmt.Sprintf("%d", v)
			if err := g.AddEdge(from, to, w); err != nil {
				return nil, err
			}
			if opts.Directed && rng.Float64() < 0.5 {
				if err := g.AddEdge(to, from, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomQuery picks two distinct vertices from g using the given seed.
// Returns ErrTooFewVertices when the graph has fewer than two vertices.
func RandomQuery(g *core.Graph, seed int64) (start, end string, err error) {
	vertices := g.Vertices()
	if len(vertices) < 2 {
		return "", "", ErrTooFewVertices
	}

	rng := rand.New(rand.NewSource(seed))
	i := rng.Intn(len(vertices))
	j := rng.Intn(len(vertices) - 1)
	if j >= i {
		j++
	}

	return vertices[i], vertices[j], nil
}
