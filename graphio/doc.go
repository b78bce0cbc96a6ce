// Package graphio builds the graphs pathbench runs against: canonical
// fixtures used across the test suite, a seeded random generator, a
// delimited-text loader/writer, and random query selection.
//
// These are thin construction helpers — all algorithmic substance lives in
// shortestpath. The core treats every graph produced here as read-only.
//
// Fixtures
//
//	SimpleWeighted    - directed 5-vertex graph; shortest A→E is
//	                    [A B C D E] with cost 7.
//	NegativeWeight    - directed graph with one negative edge and no
//	                    negative cycle; shortest A→D is [A B C D] cost 3.
//	Disconnected      - two undirected components {A,B} and {C,D}.
//
// CSV format
//
//	Header: source,target,weight — the weight column is optional and
//	defaults to core.DefaultEdgeWeight when absent or empty.
package graphio
