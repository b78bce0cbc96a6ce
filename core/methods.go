// This file implements vertex and edge mutation plus the deterministic
// read APIs every algorithm relies on (Vertices, Neighbors, Edges,
// EdgeWeight). Determinism contract:
//   - Vertices() returns IDs sorted ascending.
//   - Neighbors(id) returns outgoing edges sorted by destination ID.
//   - Edges() returns edges sorted by (From, To), undirected edges once.
package core

import "sort"

// AddVertex inserts the vertex id if absent.
// Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Sorting makes every downstream traversal reproducible for a fixed graph.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge inserts (or replaces) the edge from → to with the given weight,
// creating missing endpoints on the fly.
//
// Validation, in order:
//  1. Both IDs must be non-empty (ErrEmptyVertexID).
//  2. weight != 0 requires a weighted graph (ErrBadWeight).
//  3. from == to requires WithLoops (ErrLoopNotAllowed).
//  4. WithEdgeDirected(...) requires WithMixedEdges (ErrMixedEdgesNotAllowed).
//
// Undirected edges are stored mirrored: adj[from][to] and adj[to][from]
// each hold their own *Edge with endpoints in iteration order, so
// Neighbors(v) can always hand out edges with From == v.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	// A per-edge override is any orientation differing from the default.
	if e.Directed != g.directed && !g.allowMixed {
		return ErrMixedEdgesNotAllowed
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.ensureAdj(from)[to] = e
	if !e.Directed && from != to {
		g.ensureAdj(to)[from] = &Edge{From: to, To: from, Weight: weight, Directed: false}
	}

	return nil
}

// HasEdge reports whether an edge from → to exists (including the mirrored
// direction of an undirected edge).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// Neighbors returns all edges leaving the vertex id, sorted by destination
// ID ascending. Every returned edge satisfies e.From == id; undirected edges
// appear via their mirrored copy. Treat returned edges as read-only.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d = out-degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adj[id]
	out := make([]*Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	// Sort by destination to ensure reproducible relaxation order.
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Edges returns every edge sorted by (From, To). Undirected edges are
// reported once, with endpoints ordered From < To.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for from, bucket := range g.adj {
		for to, e := range bucket {
			// Skip the mirrored half of an undirected edge.
			if !e.Directed && to < from {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges, counting undirected edges once.
// Complexity: O(E).
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}

// EdgeWeight returns the effective traversal cost of e: Edge.Weight on a
// weighted graph, DefaultEdgeWeight otherwise. All algorithms read weights
// through this method so the unspecified-weight default stays uniform.
// Complexity: O(1).
func (g *Graph) EdgeWeight(e *Edge) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.weighted {
		return DefaultEdgeWeight
	}

	return e.Weight
}

// Weight returns the effective weight of the edge from → to and whether the
// edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adj[from][to]
	if !ok {
		return 0, false
	}
	if !g.weighted {
		return DefaultEdgeWeight, true
	}

	return e.Weight, true
}

// ensureVertex registers id in the vertex set. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = struct{}{}
	}
}

// ensureAdj returns the adjacency bucket for id, allocating it if needed.
// Caller holds the write lock.
func (g *Graph) ensureAdj(id string) map[string]*Edge {
	bucket, ok := g.adj[id]
	if !ok {
		bucket = make(map[string]*Edge)
		g.adj[id] = bucket
	}

	return bucket
}
