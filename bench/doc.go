// Package bench runs a named set of shortest-path algorithms against one
// (start, end) query on one graph, measuring each run uniformly and
// collecting the outcomes into a Batch of immutable Records.
//
// Failure isolation
//
//	The harness is the recovery boundary: an algorithm returning an error or
//	panicking produces a failed Record (success=false, infinite cost, error
//	message) and the batch continues. One algorithm can never abort the
//	batch; every requested algorithm yields exactly one Record.
//
// Success
//
//	A run succeeds exactly when the algorithm returned a non-nil path,
//	independent of how large the cost is. "No path found" is a failed-Record
//	outcome with an empty error message, distinguishing it from an errored
//	run in Summarize.
//
// Measurement
//
//	Wall time via time.Since around the single call; memory as the
//	heap-allocation delta between two runtime.ReadMemStats samples taken
//	immediately before and after the call. The memory figure is inherently
//	approximate in the presence of GC or concurrent activity — it is a
//	comparative indicator, not an exact footprint.
//
// Determinism
//
//	Algorithms run sequentially in lexicographic name order, so a batch's
//	record order is stable for a fixed algorithm set.
//
// Aggregation and export
//
//	Best selects the minimum-cost successful Record; Summarize separates
//	"errored" from "found no path"; WriteCSV emits the fixed column set
//	algorithm, execution_time, memory_used, path_length, path_cost, success.
package bench
