// Package shortestpath implements eight single-query shortest-path strategies
// over a core.Graph behind one shared contract, so they can be benchmarked
// against each other by the bench package.
//
// Contract
//
//	Every algorithm is a Func:
//
//	    func(ctx context.Context, g *core.Graph, start, end string) (Result, error)
//
//	  - start and end must exist in g, otherwise ErrVertexNotFound.
//	  - start == end returns the single-node path with cost 0.
//	  - An unreachable end is NOT an error: the algorithm returns the no-path
//	    sentinel (Path == nil, Cost == +Inf) and a nil error.
//	  - Exactly one of {non-nil path + finite cost, nil path + infinite cost}
//	    holds on a nil-error return.
//	  - The input graph is never mutated; repeated calls on a fixed graph are
//	    deterministic (core.Neighbors iterates in sorted order).
//
// Algorithms
//
//	Label-setting (require non-negative weights; behavior on negative
//	weights is undefined by contract and deliberately not checked):
//	  - Dijkstra              O((V+E) log V)
//	  - AStar                 O((V+E) log V), Euclidean heuristic when vertex
//	                          IDs carry coordinates ("x,y" or "x_y"), else
//	                          degrades to Dijkstra
//	  - BidirectionalDijkstra two simultaneous frontiers meeting in the middle
//
//	Label-correcting (handle negative weights, detect negative cycles):
//	  - BellmanFord           O(V*E), ErrNegativeCycle after the verification pass
//	  - SPFA                  queue-driven Bellman-Ford; same distances, with a
//	                          bounded-dequeue safeguard instead of a
//	                          verification pass
//
//	DP / preprocessing based:
//	  - DAGShortestPath       O(V+E) over a topological order; ErrNotDAG on
//	                          cyclic input before any relaxation
//	  - FloydWarshall         O(V^3) all-pairs table answering the one query
//	  - Johnson               Bellman-Ford re-weighting + Dijkstra from every
//	                          vertex; shares ErrNegativeCycle with Bellman-Ford
//
//	Meta:
//	  - Yen (KShortest)       up to k simple paths in non-decreasing cost order;
//	                          fewer than k is a normal outcome, never an error
//
// Errors
//
//	ErrGraphNil       - nil graph pointer.
//	ErrEmptyEndpoint  - start or end is the empty string.
//	ErrVertexNotFound - start or end missing from the graph.
//	ErrNegativeCycle  - a negative-weight cycle reachable from the source.
//	ErrNotDAG         - DAGShortestPath given a cyclic graph.
//	ErrBadK           - KShortest called with k < 1.
package shortestpath
