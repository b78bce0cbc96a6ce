// This file declares the Record and Batch types, harness options, and the
// package's sentinel errors.
package bench

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Sentinel errors for harness and aggregation operations.
var (
	// ErrNilGraph is returned when Run receives a nil graph.
	ErrNilGraph = errors.New("bench: graph is nil")

	// ErrNoAlgorithms is returned when Run receives an empty algorithm set.
	ErrNoAlgorithms = errors.New("bench: no algorithms provided")

	// ErrUnknownAlgorithm is returned by Select for a name missing from the
	// registry.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm name")

	// ErrEmptyBatch is returned by Best for a batch without records.
	ErrEmptyBatch = errors.New("bench: batch holds no records")

	// ErrNoneSucceeded is returned by Best when no algorithm found a path.
	// This is a valid outcome to surface to the caller, not a harness fault.
	ErrNoneSucceeded = errors.New("bench: no algorithm found a path")

	// ErrBadSuite is returned for suite files missing required fields.
	ErrBadSuite = errors.New("bench: invalid suite definition")
)

// Record captures one (algorithm, query) run. Records are created by the
// harness and never mutated afterwards.
type Record struct {
	// Algorithm is the registry name the run was dispatched under.
	Algorithm string

	// Elapsed is the wall-clock duration of the single call.
	Elapsed time.Duration

	// MemoryBytes is the heap-allocation delta across the call, clamped at
	// zero. Approximate by nature: a garbage-collection cycle during the
	// call can shrink the delta, down to a reported 0 for a run that did
	// allocate. See the package documentation.
	MemoryBytes uint64

	// PathLength is the number of vertices on the returned path (0 on failure).
	PathLength int

	// PathCost is the returned cost; +Inf when no path was found or the run
	// failed.
	PathCost float64

	// Success reports whether the algorithm returned a path.
	Success bool

	// Err holds the error or panic message for errored runs, empty otherwise.
	// A failed run with an empty Err means "no path found", not a fault.
	Err string

	// Path is the returned vertex sequence, kept for display; nil on failure.
	Path []string
}

// Errored reports whether the run failed because the algorithm returned an
// error (or panicked), as opposed to legitimately finding no path.
func (r Record) Errored() bool { return r.Err != "" }

// Batch is the ordered set of Records produced for one query. It is owned by
// the Run invocation that produced it and is append-only during the run.
type Batch struct {
	// ID uniquely identifies the batch (UUID).
	ID string

	// Start and End echo the query the batch was run for.
	Start string
	End   string

	// Records holds one entry per requested algorithm, in lexicographic
	// algorithm-name order.
	Records []Record
}

// Options configures a harness run.
type Options struct {
	// Timeout, when positive, bounds each individual algorithm call via a
	// per-run context deadline. Zero means no per-run deadline.
	Timeout time.Duration

	// Logger receives per-run progress events. Defaults to a no-op logger so
	// library users stay silent unless they opt in.
	Logger zerolog.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// WithTimeout bounds every individual algorithm call by d. Cubic algorithms
// on large graphs are the intended target; a run hitting the deadline is
// recorded as an errored Record, and the batch continues.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithLogger attaches a zerolog logger for per-run progress events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// defaultOptions returns the harness defaults: no per-run deadline, no-op
// logging.
func defaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
