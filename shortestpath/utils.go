// Shared plumbing for the algorithm implementations: endpoint validation,
// arc collection, predecessor-map path reconstruction, cost summation, and
// the coordinate parsing used by the A* heuristic.
package shortestpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathbench/core"
)

// arc is a directed traversal step u → v with an effective weight. Undirected
// edges contribute one arc per direction via core's mirrored adjacency.
type arc struct {
	from   string
	to     string
	weight float64
}

// validate performs the shared precondition checks, in order:
//  1. g must be non-nil (ErrGraphNil).
//  2. start and end must be non-empty (ErrEmptyEndpoint).
//  3. start and end must exist in g (ErrVertexNotFound, naming the culprit).
func validate(g *core.Graph, start, end string) error {
	if g == nil {
		return ErrGraphNil
	}
	if start == "" || end == "" {
		return ErrEmptyEndpoint
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, end)
	}

	return nil
}

// singleVertex returns the trivial result for start == end queries: the
// single-node path with cost 0, uniform across all algorithms.
func singleVertex(start string) Result {
	return Result{Path: []string{start}, Cost: 0}
}

// collectArcs flattens the graph into a deterministic arc list. The outer
// iteration follows Vertices() (sorted), the inner follows Neighbors()
// (sorted by destination), so every label-correcting pass relaxes arcs in a
// fixed order.
// Complexity: O(V + E log d_max).
func collectArcs(g *core.Graph) []arc {
	vertices := g.Vertices()

	var arcs []arc
	for _, u := range vertices {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			continue // vertex removed concurrently; treated as isolated
		}
		for _, e := range neighbors {
			arcs = append(arcs, arc{from: u, to: e.To, weight: g.EdgeWeight(e)})
		}
	}

	return arcs
}

// adjacency builds a from → outgoing-arcs map with effective weights.
// Used by Johnson's per-vertex Dijkstra runs to avoid re-querying the graph.
// Complexity: O(V + E log d_max).
func adjacency(g *core.Graph) map[string][]arc {
	vertices := g.Vertices()
	adj := make(map[string][]arc, len(vertices))
	for _, u := range vertices {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		out := make([]arc, 0, len(neighbors))
		for _, e := range neighbors {
			out = append(out, arc{from: u, to: e.To, weight: g.EdgeWeight(e)})
		}
		adj[u] = out
	}

	return adj
}

// reconstruct walks the predecessor map from end back to start and reverses
// the chain. Returns nil when the chain does not terminate at start (end is
// unreachable or the map is inconsistent).
// Complexity: O(len(path)).
func reconstruct(prev map[string]string, start, end string) []string {
	// Walk backwards, guarding against predecessor loops with a step bound.
	path := []string{end}
	cur := end
	for cur != start {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil
		}
		path = append(path, p)
		cur = p
		if len(path) > len(prev)+1 {
			return nil
		}
	}

	// Reverse in place: the walk produced end → start order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathCost sums the effective weights along consecutive pairs of path.
// Returns the no-path sentinel cost if any hop is missing from the graph.
func pathCost(g *core.Graph, path []string) (float64, bool) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += w
	}

	return total, true
}

// parseCoords extracts a coordinate pair from a vertex ID of the form "x,y"
// or "x_y" (the grid naming convention). Reports ok=false for any other ID,
// which makes the A* heuristic degrade to zero.
func parseCoords(id string) (x, y float64, ok bool) {
	sep := ","
	if !strings.Contains(id, sep) {
		sep = "_"
	}
	parts := strings.Split(id, sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}

	return x, y, true
}
