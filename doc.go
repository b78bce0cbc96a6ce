// Package pathbench is a shortest-path algorithm comparison suite: one
// graph model, nine interchangeable algorithms behind a single function
// signature, and a benchmark harness that races them against the same
// query and reports time, memory, and path quality side by side.
//
// 🚀 What is pathbench?
//
//	A modern, thread-safe toolkit that brings together:
//		• Core primitives: a mutable weighted graph with directed,
//		  undirected and mixed edge modes
//		• Classic algorithms: Dijkstra, A*, Bidirectional Dijkstra
//		• Negative-weight algorithms: Bellman–Ford, SPFA, Floyd–Warshall,
//		  Johnson
//		• Structure-aware: DAG shortest path via topological ordering
//		• Alternatives: Yen's K-shortest simple paths
//		• Harness: per-algorithm failure isolation, timing, heap deltas,
//		  CSV export, YAML suite files
//
// ✨ Why choose pathbench?
//
//   - One contract – every algorithm is a shortestpath.Func; swap them
//     freely, benchmark them fairly
//   - Rock-solid guarantees – R/W locks, deterministic iteration order,
//     reproducible random graphs
//   - Honest failures – a panicking or erroring algorithm becomes one
//     failed record, never a crashed batch
//
// Under the hood, everything is organized under four subpackages and one
// command:
//
//	core/          — fundamental Graph and Edge types & thread-safe primitives
//	shortestpath/  — the nine algorithms and their shared contract
//	bench/         — the harness: Run, Best, Summarize, CSV export, suites
//	graphio/       — fixtures, random generation, CSV exchange
//	cmd/pathbench/ — the CLI
//
// Quick ASCII example:
//
//	    A──1──B
//	          │
//	          2
//	          │
//	    D──1──C
//
//	Dijkstra(A, D) answers [A B C D] with cost 4.
//
// Start with graphio.SimpleWeighted and shortestpath.Dijkstra, then hand
// the full bench.Registry to bench.Run.
//
//	go get github.com/katalvlaran/pathbench
package pathbench
