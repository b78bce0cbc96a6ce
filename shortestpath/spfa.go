package shortestpath

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// SPFA (Shortest Path Faster Algorithm) computes the same distances as
// BellmanFord using a work-queue of "dirty" vertices instead of blind full
// passes: only vertices whose distance just improved get their outgoing arcs
// re-examined. Absent negative cycles the two algorithms agree exactly.
//
// Negative cycles: unlike BellmanFord, SPFA performs no verification pass.
// Instead it carries a bounded-dequeue safeguard — a vertex dequeued more
// than |V| times can only mean its distance keeps shrinking around a
// negative-weight cycle, so the call fails with ErrNegativeCycle rather than
// looping forever. The asymmetry with BellmanFord's explicit verification is
// intentional: the safeguard is a termination guarantee, not a detector with
// pinpointed arc context.
//
// Complexity:
//   - Time:  O(V * E) worst case, typically far lower on sparse graphs
//   - Space: O(V + E)
func SPFA(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}

	// 2) Flatten outgoing arcs per vertex for queue-driven relaxation.
	adj := adjacency(g)
	vertexCount := g.VertexCount()

	// 3) State: distances, predecessors, queue membership, dequeue counter.
	dist := make(map[string]float64, vertexCount)
	for _, v := range g.Vertices() {
		dist[v] = math.Inf(1)
	}
	dist[start] = 0
	prev := make(map[string]string, vertexCount)
	inQueue := make(map[string]bool, vertexCount)
	dequeues := make(map[string]int, vertexCount)

	queue := []string{start}
	inQueue[start] = true

	// 4) Drain the work-queue: relax the dirty vertex's arcs and re-enqueue
	//    any neighbor whose distance improved.
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}

		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		// Bounded-dequeue safeguard: |V| legitimate improvements per vertex
		// at most; anything beyond proves a negative-weight cycle.
		dequeues[u]++
		if dequeues[u] > vertexCount {
			return NoPath(), fmt.Errorf("%w: vertex %q relaxed more than %d times",
				ErrNegativeCycle, u, vertexCount)
		}

		du := dist[u]
		for _, a := range adj[u] {
			cand := du + a.weight
			if cand >= dist[a.to] {
				continue
			}
			dist[a.to] = cand
			prev[a.to] = u
			if !inQueue[a.to] {
				queue = append(queue, a.to)
				inQueue[a.to] = true
			}
		}
	}

	// 5) Unreachable end: the no-path sentinel, not an error.
	if math.IsInf(dist[end], 1) {
		return NoPath(), nil
	}

	return Result{Path: reconstruct(prev, start, end), Cost: dist[end]}, nil
}
