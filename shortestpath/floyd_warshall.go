package shortestpath

import (
	"context"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// FloydWarshall computes the full all-pairs distance and next-hop matrices by
// iterative relaxation through every intermediate vertex, then answers the
// single (start, end) query by lookup and next-hop walking. Loop order is
// fixed (k → i → j) so accumulation is deterministic.
//
// Negative weights are supported; a negative value appearing on the matrix
// diagonal after the closure proves a negative-weight cycle and fails the
// call with ErrNegativeCycle — the same failure Bellman-Ford reports.
//
// Complexity:
//   - Time:  O(V^3)
//   - Space: O(V^2)
func FloydWarshall(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}

	// 2) Dense indexing over the sorted vertex list.
	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[string]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	// 3) Initialize dist to +Inf off-diagonal, 0 on the diagonal, and edge
	//    weights for direct arcs. next[i][j] records the first hop of the
	//    current best i→j path.
	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			dist[i][j] = math.Inf(1)
			next[i][j] = -1
		}
		dist[i][i] = 0
		next[i][i] = i
	}
	for _, a := range collectArcs(g) {
		i, j := index[a.from], index[a.to]
		// Keep the cheaper arc if parallel directions disagree.
		if a.weight < dist[i][j] {
			dist[i][j] = a.weight
			next[i][j] = j
		}
	}

	// 4) Triple relaxation loop, k → i → j, with cancellation checks on the
	//    outer (intermediate-vertex) loop only: the inner body is allocation
	//    free and cheap.
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue // i cannot reach k; no path via k can improve i→j
			}
			for j := 0; j < n; j++ {
				dkj := dist[k][j]
				if math.IsInf(dkj, 1) {
					continue
				}
				if cand := dik + dkj; cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	// 5) A negative diagonal entry after the closure is a negative cycle.
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return NoPath(), ErrNegativeCycle
		}
	}

	// 6) Answer the query: detect unreachability, then walk next hops.
	s, t := index[start], index[end]
	if math.IsInf(dist[s][t], 1) {
		return NoPath(), nil
	}
	path := make([]string, 0, n)
	for cur := s; ; {
		path = append(path, vertices[cur])
		if cur == t {
			break
		}
		cur = next[cur][t]
		if cur < 0 || len(path) > n {
			return NoPath(), nil // inconsistent matrix; treat as no path
		}
	}

	return Result{Path: path, Cost: dist[s][t]}, nil
}
