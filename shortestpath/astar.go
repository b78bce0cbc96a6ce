package shortestpath

import (
	"container/heap"
	"context"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// EuclideanHeuristic estimates remaining cost as the straight-line distance
// between coordinate-bearing vertex IDs ("x,y" or "x_y"). When either ID
// carries no coordinates the estimate is 0, which degrades A* to Dijkstra.
//
// Admissibility note: the estimate never overestimates only when edge
// weights are at least the Euclidean distance between their endpoints (true
// for geometric graphs and grids with unit weights). On arbitrary weighted
// graphs prefer the zero heuristic.
func EuclideanHeuristic(from, to string) float64 {
	x1, y1, ok1 := parseCoords(from)
	x2, y2, ok2 := parseCoords(to)
	if !ok1 || !ok2 {
		return 0
	}

	return math.Hypot(x1-x2, y1-y2)
}

// AStar computes the minimum-cost path from start to end using best-first
// search ordered by dist + EuclideanHeuristic(v, end).
//
// Precondition: non-negative edge weights (same undefined-behavior contract
// as Dijkstra). With an admissible heuristic the returned cost equals
// Dijkstra's; with the zero heuristic the two algorithms are identical up to
// exploration order.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func AStar(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	return astar(ctx, g, start, end, EuclideanHeuristic)
}

// AStarWith returns a Func running A* under a caller-supplied heuristic.
// The heuristic must be admissible for the result to stay optimal.
func AStarWith(h Heuristic) Func {
	return func(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
		return astar(ctx, g, start, end, h)
	}
}

// astar is the shared implementation behind AStar and AStarWith.
func astar(ctx context.Context, g *core.Graph, start, end string, h Heuristic) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}
	if h == nil {
		h = func(string, string) float64 { return 0 }
	}

	// 2) State: g-scores, predecessors, settled set; the frontier is ordered
	//    by f = g + h, seeded with the start's estimate.
	gScore := map[string]float64{start: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool)
	pq := &frontier{{id: start, priority: h(start, end), dist: 0}}
	heap.Init(pq)

	// 3) Main loop: expand the vertex with the smallest estimated total.
	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}

		item := heap.Pop(pq).(frontierItem)
		u := item.id
		if settled[u] {
			continue
		}
		settled[u] = true

		// With an admissible heuristic, settling end finalizes its distance.
		if u == end {
			return Result{Path: reconstruct(prev, start, end), Cost: item.dist}, nil
		}

		// 4) Relax successors under the tentative g-score rule.
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return NoPath(), err
		}
		for _, e := range neighbors {
			if settled[e.To] {
				continue
			}
			tentative := item.dist + g.EdgeWeight(e)
			if best, seen := gScore[e.To]; seen && tentative >= best {
				continue
			}
			gScore[e.To] = tentative
			prev[e.To] = u
			heap.Push(pq, frontierItem{
				id:       e.To,
				priority: tentative + h(e.To, end),
				dist:     tentative,
			})
		}
	}

	return NoPath(), nil
}
