package bench

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathbench/shortestpath"
)

// Canonical algorithm names, as accepted by Select and emitted in exports.
const (
	NameDijkstra      = "dijkstra"
	NameAStar         = "astar"
	NameBellmanFord   = "bellman-ford"
	NameSPFA          = "spfa"
	NameBidirectional = "bidirectional"
	NameDAG           = "dag"
	NameFloydWarshall = "floyd-warshall"
	NameJohnson       = "johnson"
	NameYen           = "yen"
)

// Registry returns the full algorithm catalogue keyed by canonical name.
// The map is freshly built per call, so callers may add or remove entries
// without affecting later callers.
func Registry() map[string]shortestpath.Func {
	return map[string]shortestpath.Func{
		NameDijkstra:      shortestpath.Dijkstra,
		NameAStar:         shortestpath.AStar,
		NameBellmanFord:   shortestpath.BellmanFord,
		NameSPFA:          shortestpath.SPFA,
		NameBidirectional: shortestpath.BidirectionalDijkstra,
		NameDAG:           shortestpath.DAGShortestPath,
		NameFloydWarshall: shortestpath.FloydWarshall,
		NameJohnson:       shortestpath.Johnson,
		NameYen:           shortestpath.Yen,
	}
}

// Algorithms lists every canonical name in lexicographic order.
func Algorithms() []string {
	reg := Registry()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Select resolves a list of names against the registry. An empty list selects
// the whole catalogue. Unknown names fail with ErrUnknownAlgorithm.
func Select(names []string) (map[string]shortestpath.Func, error) {
	reg := Registry()
	if len(names) == 0 {
		return reg, nil
	}

	picked := make(map[string]shortestpath.Func, len(names))
	for _, name := range names {
		fn, ok := reg[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
		picked[name] = fn
	}

	return picked, nil
}
