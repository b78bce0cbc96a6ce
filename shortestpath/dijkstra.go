package shortestpath

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/pathbench/core"
)

// Dijkstra computes the minimum-cost path from start to end by settling
// vertices in non-decreasing distance order with a lazy-decrease-key
// min-heap frontier.
//
// Precondition: all edge weights must be non-negative. This is a correctness
// property of the algorithm, not a runtime check — on negative weights the
// returned cost is undefined by contract. Use BellmanFord or SPFA for graphs
// that may carry negative weights.
//
// Termination: when end is settled (success) or the frontier empties
// (no path → sentinel).
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy decrease-key
func Dijkstra(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}

	// 2) Trivial query: the single-node path with cost 0.
	if start == end {
		return singleVertex(start), nil
	}

	// 3) Algorithm state: best-known distances, predecessors, settled set.
	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool)
	pq := newFrontier(start)

	// 4) Main loop: settle the cheapest unsettled vertex and relax outward.
	for pq.Len() > 0 {
		// Honor cancellation between settles.
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}

		item := heap.Pop(pq).(frontierItem)
		u := item.id

		// Discard stale heap entries (lazy decrease-key).
		if settled[u] {
			continue
		}
		settled[u] = true

		// Target settled: its distance is final, reconstruct and return.
		if u == end {
			return Result{Path: reconstruct(prev, start, end), Cost: item.dist}, nil
		}

		// 5) Relax every outgoing edge of u.
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return NoPath(), err
		}
		for _, e := range neighbors {
			if settled[e.To] {
				continue
			}
			cand := item.dist + g.EdgeWeight(e)
			if best, seen := dist[e.To]; seen && cand >= best {
				continue
			}
			dist[e.To] = cand
			prev[e.To] = u
			heap.Push(pq, frontierItem{id: e.To, priority: cand, dist: cand})
		}
	}

	// 6) Frontier exhausted without settling end: unreachable.
	return NoPath(), nil
}
