// This file declares Edge, Graph, GraphOption, EdgeOption, sentinel errors,
// and the NewGraph constructor. Query and mutation methods live in methods.go;
// cloning in clone.go.
package core

import (
	"errors"
	"sync"
)

// DefaultEdgeWeight is the weight reported for every edge of an unweighted
// graph. Keeping it here (rather than in each algorithm) guarantees the
// default is uniform across the whole suite.
const DefaultEdgeWeight float64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge directedness override was
	// attempted on a graph constructed without WithMixedEdges.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Edge represents a connection between two vertices.
//
// From → To with a signed float64 Weight. Directed reports whether this edge
// is one-way; undirected edges are stored mirrored, so Neighbors always
// returns edges with From equal to the queried vertex.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the signed cost of traversing the edge. Read it through
	// Graph.EdgeWeight to honor the unweighted-graph default.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Requires the graph to be constructed with WithMixedEdges.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory weighted graph consumed by every algorithm.
//
// Storage is a vertex set plus a nested adjacency map adj[from][to] = *Edge.
// At most one edge exists per ordered (from, to) pair; re-adding replaces the
// weight. Undirected edges are stored twice (once per direction) so that
// neighbor iteration never needs to reverse endpoints.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, immutable after construction.
	directed   bool // default directedness for new edges
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge directedness overrides

	vertices map[string]struct{}         // vertex ID → present
	adj      map[string]map[string]*Edge // from → to → edge
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, with no loops and no
// per-edge overrides.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the graph-wide default directedness for new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// If false, EdgeWeight returns DefaultEdgeWeight for every edge.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// MixedEdges reports whether per-edge directedness overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMixed
}
