// Min-heap frontier shared by the label-setting algorithms (Dijkstra, A*,
// Bidirectional Dijkstra, Johnson's per-vertex runs, Yen's spur searches).
//
// The heap follows the lazy-decrease-key pattern: improving a vertex pushes a
// fresh item instead of re-keying the old one; stale items are discarded on
// pop by checking the settled set. Ties on priority break on vertex ID so the
// exploration order is deterministic for a fixed graph.
package shortestpath

import "container/heap"

// frontierItem is one (vertex, priority) entry in the frontier.
// For Dijkstra the priority is the tentative distance; for A* it is the
// distance plus the heuristic estimate.
type frontierItem struct {
	id       string  // vertex ID
	priority float64 // heap ordering key
	dist     float64 // tentative distance from the source
}

// frontier is a min-heap of frontierItem ordered by (priority, id) ascending.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// newFrontier returns an initialized heap seeded with the source at
// priority 0.
func newFrontier(source string) *frontier {
	f := &frontier{{id: source, priority: 0, dist: 0}}
	heap.Init(f)

	return f
}
