// Cloning helpers: independent copies preserving the construction-time
// flags, for callers that want to mutate a graph without touching the
// shared original.
package core

// CloneEmpty returns a new Graph with the same configuration flags and the
// same vertex set, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMixed: g.allowMixed,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adj:        make(map[string]map[string]*Edge, len(g.adj)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}

	return c
}

// Clone returns a deep copy of the graph: flags, vertices, and edges.
// Edge structs are copied, so mutating the clone never touches the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for from, bucket := range g.adj {
		dst := make(map[string]*Edge, len(bucket))
		for to, e := range bucket {
			cp := *e
			dst[to] = &cp
		}
		c.adj[from] = dst
	}

	return c
}
