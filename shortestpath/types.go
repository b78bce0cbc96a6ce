// This file declares the shared Result type, the Func contract implemented by
// every algorithm, and the package's sentinel errors.
package shortestpath

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// Sentinel errors shared by all algorithms.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrEmptyEndpoint is returned when start or end is the empty string.
	ErrEmptyEndpoint = errors.New("shortestpath: endpoint vertex ID is empty")

	// ErrVertexNotFound is returned when start or end is absent from the graph.
	ErrVertexNotFound = errors.New("shortestpath: endpoint vertex not found in graph")

	// ErrNegativeCycle is returned by Bellman-Ford, SPFA, Floyd-Warshall and
	// Johnson when a negative-weight cycle reachable from the source exists.
	// It is a hard failure for that call, never a silent fallback.
	ErrNegativeCycle = errors.New("shortestpath: graph contains a negative-weight cycle")

	// ErrNotDAG is returned by DAGShortestPath when the input graph contains
	// a cycle. The check runs before any relaxation.
	ErrNotDAG = errors.New("shortestpath: graph is not a DAG")

	// ErrBadK is returned by KShortest when k < 1.
	ErrBadK = errors.New("shortestpath: k must be at least 1")
)

// Result is the outcome of one shortest-path query.
//
// Invariant: either Path is a non-empty walk from start to end and Cost is
// the finite sum of its edge weights, or Path is nil and Cost is +Inf.
type Result struct {
	// Path lists the vertices from start to end inclusive; nil when no path
	// exists.
	Path []string

	// Cost is the sum of edge weights along Path, or +Inf when Path is nil.
	Cost float64
}

// Found reports whether the query produced a path.
func (r Result) Found() bool { return r.Path != nil }

// Len returns the number of vertices on the path (0 when no path exists).
func (r Result) Len() int { return len(r.Path) }

// NoPath returns the canonical no-path sentinel: nil path, +Inf cost.
func NoPath() Result {
	return Result{Path: nil, Cost: math.Inf(1)}
}

// Func is the uniform contract every algorithm in this package satisfies.
// The bench package dispatches any Func by name without knowing which
// strategy hides behind it.
type Func func(ctx context.Context, g *core.Graph, start, end string) (Result, error)

// Heuristic estimates the remaining cost from a vertex to the target.
// It must never overestimate the true remaining cost for A* to stay optimal.
type Heuristic func(from, to string) float64
