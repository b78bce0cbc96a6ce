package shortestpath

import (
	"container/heap"
	"context"
	"math"

	"github.com/katalvlaran/pathbench/core"
)

// BidirectionalDijkstra runs two simultaneous Dijkstra frontiers — forward
// from start and backward from end over reversed arcs — and stops once the
// cheapest possible meeting point is proven optimal. The combined cost always
// matches a plain one-directional Dijkstra on the same graph.
//
// Precondition: non-negative edge weights (same undefined-behavior contract
// as Dijkstra).
//
// Stopping rule: the search halts when the sum of the two frontier minima is
// no smaller than the best meeting cost found so far; at that point no
// undiscovered meeting can improve the answer.
//
// Complexity:
//   - Time:  O((V + E) log V), typically touching far fewer vertices than a
//     one-directional run on large graphs
//   - Space: O(V + E)
func BidirectionalDijkstra(ctx context.Context, g *core.Graph, start, end string) (Result, error) {
	// 1) Shared precondition checks.
	if err := validate(g, start, end); err != nil {
		return NoPath(), err
	}
	if start == end {
		return singleVertex(start), nil
	}

	// 2) Forward arcs come straight from the graph; backward arcs are the
	//    forward arcs reversed, so the backward search walks edges against
	//    their direction.
	fwd := adjacency(g)
	bwd := make(map[string][]arc, len(fwd))
	for u, arcs := range fwd {
		for _, a := range arcs {
			bwd[a.to] = append(bwd[a.to], arc{from: a.to, to: u, weight: a.weight})
		}
	}

	// 3) Twin search states. dist maps hold tentative distances; settled sets
	//    finalize them.
	side := [2]*searchState{
		newSearchState(start, fwd),
		newSearchState(end, bwd),
	}

	// 4) Best meeting found so far: a vertex reached by both searches.
	best := math.Inf(1)
	meet := ""

	// 5) Alternate expansions, always advancing the side with the cheaper
	//    frontier top. A side whose top reaches best can no longer improve
	//    the meeting (settle order is non-decreasing under non-negative
	//    weights); the search stops once both sides reach that point. An
	//    exhausted side contributes +Inf and simply stops being picked.
	for side[0].top() < best || side[1].top() < best {
		if err := ctx.Err(); err != nil {
			return NoPath(), err
		}

		cur := side[0]
		other := side[1]
		if side[1].top() < side[0].top() {
			cur, other = other, cur
		}

		u, d, ok := cur.settleNext()
		if !ok {
			continue // stale heap entry
		}

		// A vertex known to both searches is a meeting candidate.
		if od, seen := other.dist[u]; seen {
			if total := d + od; total < best {
				best = total
				meet = u
			}
		}

		cur.relax(u, d)
	}

	// 6) No meeting vertex: the searches exhausted disjoint regions.
	if meet == "" {
		return NoPath(), nil
	}

	// 7) Stitch the two predecessor trees together at the meeting vertex.
	forward := reconstruct(side[0].prev, start, meet)
	if forward == nil {
		return NoPath(), nil
	}
	path := forward
	for cur := meet; cur != end; {
		next, ok := side[1].prev[cur]
		if !ok || next == "" {
			return NoPath(), nil
		}
		path = append(path, next)
		cur = next
	}

	return Result{Path: path, Cost: best}, nil
}

// searchState is one directional half of the bidirectional search.
type searchState struct {
	adj     map[string][]arc
	dist    map[string]float64
	prev    map[string]string
	settled map[string]bool
	pq      *frontier
}

func newSearchState(source string, adj map[string][]arc) *searchState {
	return &searchState{
		adj:     adj,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		settled: make(map[string]bool),
		pq:      newFrontier(source),
	}
}

// top returns the priority of the cheapest frontier entry, or +Inf when the
// frontier is exhausted.
func (s *searchState) top() float64 {
	if s.pq.Len() == 0 {
		return math.Inf(1)
	}

	return (*s.pq)[0].priority
}

// settleNext pops the cheapest unsettled vertex, finalizing its distance.
// Reports ok=false for stale lazy-decrease-key entries.
func (s *searchState) settleNext() (string, float64, bool) {
	item := heap.Pop(s.pq).(frontierItem)
	if s.settled[item.id] {
		return "", 0, false
	}
	s.settled[item.id] = true

	return item.id, item.dist, true
}

// relax pushes improved neighbors of the settled vertex u at distance d.
func (s *searchState) relax(u string, d float64) {
	for _, a := range s.adj[u] {
		if s.settled[a.to] {
			continue
		}
		cand := d + a.weight
		if b, seen := s.dist[a.to]; seen && cand >= b {
			continue
		}
		s.dist[a.to] = cand
		s.prev[a.to] = u
		heap.Push(s.pq, frontierItem{id: a.to, priority: cand, dist: cand})
	}
}
