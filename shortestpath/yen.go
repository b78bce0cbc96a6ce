package shortestpath

import (
	"container/heap"
	"context"
	"strings"

	"github.com/katalvlaran/pathbench/core"
)

// KShortest implements Yen's algorithm: up to k distinct simple paths from
// start to end in non-decreasing cost order. Fewer than k results (down to
// zero) is a normal boundary condition when the graph holds fewer simple
// paths — never an error.
//
// Design: for every accepted path, each prefix spawns a candidate deviation.
// The prefix nodes before the spur vertex are banned from re-selection (this
// keeps candidates simple), the first arcs of accepted paths sharing that
// prefix are banned (this forces a genuinely new deviation), and a
// constrained Dijkstra runs from the spur vertex to end on what remains.
// Candidates accumulate in a min-heap keyed by total cost; the cheapest
// not-yet-accepted one is promoted each round.
//
// Precondition: non-negative edge weights (the spur searches are Dijkstra
// runs, inheriting its undefined-behavior contract on negative weights).
//
// Complexity: O(k * V * (V + E) log V) worst case.
func KShortest(ctx context.Context, g *core.Graph, start, end string, k int) ([]Result, error) {
	// 1) Preconditions: shared endpoint checks plus the k bound.
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, ErrBadK
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if start == end {
		// The only simple path from a vertex to itself is the trivial one.
		return []Result{singleVertex(start)}, nil
	}

	// 2) The first accepted path is the unconstrained shortest.
	first := dijkstraConstrained(g, start, end, nil, nil)
	if !first.Found() {
		return []Result{}, nil
	}
	accepted := []Result{first}

	// 3) Candidate pool, deduplicated by the exact node sequence.
	candidates := &candidateHeap{}
	heap.Init(candidates)
	seen := map[string]bool{pathKey(first.Path): true}

	// 4) Grow the accepted list one cheapest candidate at a time.
	for len(accepted) < k {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prevPath := accepted[len(accepted)-1].Path

		// 4a) Deviate from every prefix of the most recent accepted path.
		for j := 0; j+1 < len(prevPath); j++ {
			spur := prevPath[j]
			root := prevPath[:j+1]

			// Ban the continuation arcs of every accepted path sharing this
			// root, so the spur search must leave the known paths.
			bannedArcs := make(map[[2]string]bool)
			for _, acc := range accepted {
				if len(acc.Path) > j+1 && samePrefix(acc.Path, root) {
					bannedArcs[[2]string{acc.Path[j], acc.Path[j+1]}] = true
				}
			}
			// Ban the root nodes before the spur vertex to keep candidates
			// simple.
			bannedNodes := make(map[string]bool, j)
			for _, v := range root[:j] {
				bannedNodes[v] = true
			}

			spurRes := dijkstraConstrained(g, spur, end, bannedNodes, bannedArcs)
			if !spurRes.Found() {
				continue
			}

			rootCost, ok := pathCost(g, root)
			if !ok {
				continue
			}
			total := append(append([]string{}, root[:j]...), spurRes.Path...)
			key := pathKey(total)
			if seen[key] {
				continue
			}
			seen[key] = true
			heap.Push(candidates, candidate{path: total, cost: rootCost + spurRes.Cost})
		}

		// 4b) No remaining candidates: every simple path is accepted.
		if candidates.Len() == 0 {
			break
		}
		best := heap.Pop(candidates).(candidate)
		accepted = append(accepted, Result{Path: best.path, Cost: best.cost})
	}

	return accepted, nil
}

// Yen is the Func-shaped adapter the benchmark registry dispatches: the k=1
// case of KShortest, equivalent to the plain shortest path.
func Yen(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	paths, err := KShortest(ctx, g, start, end, 1)
	if err != nil {
		return NoPath(), err
	}
	if len(paths) == 0 {
		return NoPath(), nil
	}

	return paths[0], nil
}

// dijkstraConstrained is Dijkstra with banned vertices and banned arcs, used
// for Yen's spur searches. Bans are read-only views; the graph itself is
// never modified.
func dijkstraConstrained(g *core.Graph, start, end string, bannedNodes map[string]bool, bannedArcs map[[2]string]bool) Result {
	if bannedNodes[start] || bannedNodes[end] {
		return NoPath()
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool)
	pq := newFrontier(start)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		u := item.id
		if settled[u] {
			continue
		}
		settled[u] = true

		if u == end {
			return Result{Path: reconstruct(prev, start, end), Cost: item.dist}
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return NoPath()
		}
		for _, e := range neighbors {
			if settled[e.To] || bannedNodes[e.To] || bannedArcs[[2]string{u, e.To}] {
				continue
			}
			cand := item.dist + g.EdgeWeight(e)
			if best, known := dist[e.To]; known && cand >= best {
				continue
			}
			dist[e.To] = cand
			prev[e.To] = u
			heap.Push(pq, frontierItem{id: e.To, priority: cand, dist: cand})
		}
	}

	return NoPath()
}

// candidate is one potential k-shortest path with its total cost.
type candidate struct {
	path []string
	cost float64
}

// candidateHeap orders candidates by (cost, node sequence) ascending; the
// secondary key makes tie-breaking deterministic.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return pathKey(h[i].path) < pathKey(h[j].path)
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}

// pathKey flattens a node sequence into a map key. The NUL separator cannot
// collide with vertex IDs produced by core (IDs are non-empty user strings).
func pathKey(path []string) string { return strings.Join(path, "\x00") }

// samePrefix reports whether path begins with the given root sequence.
func samePrefix(path, root []string) bool {
	if len(path) < len(root) {
		return false
	}
	for i := range root {
		if path[i] != root[i] {
			return false
		}
	}

	return true
}
