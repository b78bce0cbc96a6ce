// Package core defines the central Graph and Edge types used by every
// algorithm in pathbench, and provides thread-safe primitives for building,
// querying, and cloning weighted graphs.
//
// What
//
//   - Graph: directed or undirected, weighted or unweighted, optional
//     self-loops, optional per-edge directedness overrides (mixed mode).
//   - Edge: From → To with a float64 Weight and a Directed flag.
//   - Deterministic read APIs: Vertices() returns IDs sorted ascending,
//     Neighbors(id) returns outgoing edges sorted by destination ID.
//
// Weight policy
//
//	Algorithms never read Edge.Weight directly; they go through
//	Graph.EdgeWeight, which returns DefaultEdgeWeight (1) for every edge of
//	an unweighted graph. This gives all algorithms one uniform default when
//	weights are unspecified.
//
// Ownership
//
//	Graphs are built by callers (see graphio) and treated as read-only by
//	the shortestpath and bench packages. No algorithm mutates its input.
//
// Concurrency
//
//	All exported methods take an internal sync.RWMutex, so a graph may be
//	shared between a UI goroutine and a background benchmark run. Within one
//	benchmark batch execution is sequential.
//
// Errors
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrBadWeight            - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMixedEdgesNotAllowed - per-edge directedness override without mixed mode.
package core
