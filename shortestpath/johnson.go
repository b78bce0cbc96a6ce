package shortestpath

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// Johnson computes all-pairs shortest paths on sparse graphs with possible
// negative weights, then answers the single (start, end) query from the
// resulting table. The algorithm:
//
//  1. Runs a Bellman-Ford pass from an implicit super-source connected to
//     every vertex with a zero-weight arc, producing potentials h(v). This
//     is where a negative-weight cycle surfaces, reported as the same
//     ErrNegativeCycle Bellman-Ford raises.
//  2. Re-weights every arc to w'(u,v) = w(u,v) + h(u) - h(v) ≥ 0, preserving
//     shortest-path ordering.
//  3. Runs Dijkstra from every vertex over the re-weighted arcs and undoes
//     the re-weighting when reading the answer.
//
// Complexity:
//   - Time:  O(V*E + V*(V + E) log V)
//   - Space: O(V^2) for the all-pairs result
func Johnson(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}

	vertices := g.Vertices()
	arcs := collectArcs(g)

	// 2) Potentials via super-source Bellman-Ford. Connecting every vertex to
	//    a virtual source with weight 0 is equivalent to starting all
	//    potentials at 0 and relaxing |V| rounds (the virtual source adds one
	//    vertex to the count).
	h := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		h[v] = 0
	}
	for round := 0; round < len(vertices); round++ {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}
		for _, a := range arcs {
			if cand := h[a.from] + a.weight; cand < h[a.to] {
				h[a.to] = cand
			}
		}
	}
	for _, a := range arcs {
		if h[a.from]+a.weight < h[a.to] {
			return NoPath(), fmt.Errorf("%w: detected while re-weighting arc %s→%s",
				ErrNegativeCycle, a.from, a.to)
		}
	}

	// 3) Re-weighted adjacency: every arc becomes non-negative.
	reweighted := make(map[string][]arc, len(vertices))
	for _, a := range arcs {
		w := a.weight + h[a.from] - h[a.to]
		reweighted[a.from] = append(reweighted[a.from], arc{from: a.from, to: a.to, weight: w})
	}

	// 4) Dijkstra from every vertex builds the all-pairs table. Only the
	//    start row's predecessor tree is retained for path reconstruction.
	table := make(map[string]map[string]float64, len(vertices))
	var startPrev map[string]string
	for _, src := range vertices {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}
		dist, prev := dijkstraArcs(reweighted, src)
		table[src] = dist
		if src == start {
			startPrev = prev
		}
	}

	// 5) Answer the query, undoing the re-weighting:
	//    d(u,v) = d'(u,v) - h(u) + h(v).
	dPrime, ok := table[start][end]
	if !ok || math.IsInf(dPrime, 1) {
		return NoPath(), nil
	}

	return Result{
		Path: reconstruct(startPrev, start, end),
		Cost: dPrime - h[start] + h[end],
	}, nil
}

// dijkstraArcs is the frontier loop shared by Johnson's per-vertex runs:
// plain Dijkstra over a prebuilt arc adjacency, returning tentative-final
// distances and the predecessor tree. Weights must be non-negative (Johnson
// guarantees this after re-weighting).
func dijkstraArcs(adj map[string][]arc, source string) (map[string]float64, map[string]string) {
	dist := map[string]float64{source: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool)
	pq := newFrontier(source)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		u := item.id
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, a := range adj[u] {
			if settled[a.to] {
				continue
			}
			cand := item.dist + a.weight
			if best, seen := dist[a.to]; seen && cand >= best {
				continue
			}
			dist[a.to] = cand
			prev[a.to] = u
			heap.Push(pq, frontierItem{id: a.to, priority: cand, dist: cand})
		}
	}

	return dist, prev
}
