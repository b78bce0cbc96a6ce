package shortestpath

import (
	"context"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// Vertex colors for the cycle-detecting DFS behind the topological sort.
const (
	white = iota // unvisited
	gray         // on the current DFS stack
	black        // fully explored
)

// DAGShortestPath computes the minimum-cost path from start to end on an
// acyclic graph by relaxing outgoing arcs in topological order. A single
// O(V+E) sweep suffices, and negative weights are handled safely because no
// cycle can ever be traversed.
//
// Precondition: the graph must be acyclic. The topological sort runs first
// and a detected cycle fails the call with ErrNotDAG before any relaxation.
// Undirected edges count as two-vertex cycles, so only directed graphs can
// satisfy the precondition.
//
// Complexity:
//   - Time:  O(V + E)
//   - Space: O(V)
func DAGShortestPath(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}

	// 2) Topological sort doubles as the acyclicity check.
	order, err := topologicalOrder(ctx, g)
	if err != nil {
		return NoPath(), err
	}

	// 3) Standard DAG relaxation: process vertices in topological order,
	//    relaxing each vertex's outgoing arcs exactly once.
	dist := make(map[string]float64, len(order))
	for _, v := range order {
		dist[v] = math.Inf(1)
	}
	dist[start] = 0
	prev := make(map[string]string, len(order))

	for _, u := range order {
		du := dist[u]
		if math.IsInf(du, 1) {
			continue // not reachable from start; nothing to relax
		}
		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return NoPath(), nerr
		}
		for _, e := range neighbors {
			if cand := du + g.EdgeWeight(e); cand < dist[e.To] {
				dist[e.To] = cand
				prev[e.To] = u
			}
		}
	}

	// 4) Reconstruct; a chain that does not reach back to start means no path.
	if math.IsInf(dist[end], 1) {
		return NoPath(), nil
	}
	path := reconstruct(prev, start, end)
	if path == nil {
		return NoPath(), nil
	}

	return Result{Path: path, Cost: dist[end]}, nil
}

// topologicalOrder computes a topological ordering of all vertices via an
// iterative three-color DFS. A gray-on-gray hit is a back edge, i.e. a cycle,
// reported as ErrNotDAG.
// Complexity: O(V + E) time, O(V) space.
func topologicalOrder(ctx context.Context, g *core.Graph) ([]string, error) {
	vertices := g.Vertices()
	state := make(map[string]int, len(vertices))
	order := make([]string, 0, len(vertices))

	// frame tracks one vertex and its position in the neighbor scan, so the
	// DFS runs without recursion (deep chains stay stack-safe).
	type frame struct {
		id    string
		edges []*core.Edge
		next  int
	}

	for _, root := range vertices {
		if state[root] != white {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rootEdges, err := g.Neighbors(root)
		if err != nil {
			return nil, err
		}
		stack := []frame{{id: root, edges: rootEdges}}
		state[root] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.edges) {
				e := top.edges[top.next]
				top.next++
				switch state[e.To] {
				case gray:
					// Back edge: the destination is on the current stack.
					return nil, ErrNotDAG
				case white:
					childEdges, nerr := g.Neighbors(e.To)
					if nerr != nil {
						return nil, nerr
					}
					state[e.To] = gray
					stack = append(stack, frame{id: e.To, edges: childEdges})
				}

				continue
			}

			// All children explored: finalize in post-order.
			state[top.id] = black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse post-order is the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
