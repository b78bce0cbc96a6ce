package shortestpath

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// BellmanFord computes the minimum-cost path from start to end by relaxing
// every arc for |V|-1 rounds, then running one verification pass: if any arc
// still relaxes, a negative-weight cycle is reachable from start and the call
// fails with ErrNegativeCycle. Detection is a hard, reported failure — never
// a silent fallback to a wrong answer.
//
// Negative edge weights are fully supported (this is the package's canonical
// negative-cycle detector; Johnson's re-weighting builds on the same pass).
//
// Complexity:
//   - Time:  O(V * E)
//   - Space: O(V + E)
func BellmanFord(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}

	// 2) Flatten the graph once; passes then touch no graph internals.
	arcs := collectArcs(g)
	vertexCount := g.VertexCount()

	// 3) dist[v] = +Inf except the source; prev drives reconstruction.
	dist := make(map[string]float64, vertexCount)
	for _, v := range g.Vertices() {
		dist[v] = math.Inf(1)
	}
	dist[start] = 0
	prev := make(map[string]string, vertexCount)

	// 4) |V|-1 unconditional full passes. Each pass relaxes every arc whose
	//    tail already has a finite distance.
	for round := 0; round < vertexCount-1; round++ {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}
		for _, a := range arcs {
			du := dist[a.from]
			if math.IsInf(du, 1) {
				continue
			}
			if cand := du + a.weight; cand < dist[a.to] {
				dist[a.to] = cand
				prev[a.to] = a.from
			}
		}
	}

	// 5) Verification pass: any further relaxation proves a reachable
	//    negative-weight cycle.
	for _, a := range arcs {
		du := dist[a.from]
		if math.IsInf(du, 1) {
			continue
		}
		if du+a.weight < dist[a.to] {
			return NoPath(), fmt.Errorf("%w: arc %s→%s weight=%g",
				ErrNegativeCycle, a.from, a.to, a.weight)
		}
	}

	// 6) Unreachable end: the no-path sentinel, not an error.
	if math.IsInf(dist[end], 1) {
		return NoPath(), nil
	}

	return Result{Path: reconstruct(prev, start, end), Cost: dist[end]}, nil
}
