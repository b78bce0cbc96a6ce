package bench

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/shortestpath"
)

// Run benchmarks every named algorithm against the (start, end) query on g,
// producing one Record per algorithm in lexicographic name order.
//
// Failure isolation: an algorithm error, panic, or per-run deadline hit is
// converted into a failed Record and the batch continues with the next
// algorithm. Run itself errors only on unusable inputs (nil graph, empty
// algorithm set).
//
// Endpoint existence is not re-validated here — algorithms fail predictably
// on unknown vertices and the harness records that failure like any other.
//
// Complexity: the sum of the individual algorithm complexities; the harness
// adds O(A log A) for name ordering, A = number of algorithms.
func Run(ctx context.Context, algos map[string]shortestpath.Func, g *core.Graph, start, end string, opts ...Option) (*Batch, error) {
	// 1) Validate harness inputs. Everything past this point is isolated.
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(algos) == 0 {
		return nil, ErrNoAlgorithms
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Fix the execution order: lexicographic by name, so batches are
	//    reproducible regardless of map iteration order.
	names := make([]string, 0, len(algos))
	for name := range algos {
		names = append(names, name)
	}
	sort.Strings(names)

	// 3) Run each algorithm in isolation and append its Record.
	batch := &Batch{
		ID:      uuid.NewString(),
		Start:   start,
		End:     end,
		Records: make([]Record, 0, len(names)),
	}
	for _, name := range names {
		rec := runOne(ctx, name, algos[name], g, start, end, cfg.Timeout)

		evt := cfg.Logger.Debug().
			Str("algorithm", rec.Algorithm).
			Dur("elapsed", rec.Elapsed).
			Bool("success", rec.Success)
		if rec.Errored() {
			evt = evt.Str("error", rec.Err)
		}
		evt.Msg("benchmark run complete")

		batch.Records = append(batch.Records, rec)
	}

	return batch, nil
}

// runOne executes a single algorithm under full isolation: panics become
// error messages, the optional deadline is applied, and timing/memory are
// sampled immediately around the call.
func runOne(ctx context.Context, name string, fn shortestpath.Func, g *core.Graph, start, end string, timeout time.Duration) Record {
	rec := Record{Algorithm: name, PathCost: math.Inf(1)}

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Sample memory immediately before and after the isolated call. The
	// heap-allocation delta is approximate (GC may run mid-call) but uniform
	// across algorithms, which is what the comparison needs.
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	heapBefore := ms.HeapAlloc

	var (
		res shortestpath.Result
		err error
	)
	started := time.Now()
	func() {
		// The harness is the recovery point: a panicking algorithm must not
		// abort the batch.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		res, err = fn(runCtx, g, start, end)
	}()
	rec.Elapsed = time.Since(started)

	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > heapBefore {
		rec.MemoryBytes = ms.HeapAlloc - heapBefore
	}

	if err != nil {
		rec.Err = err.Error()

		return rec
	}
	if !res.Found() {
		// No path is a failed record with an empty Err: a normal outcome.
		return rec
	}

	rec.Success = true
	rec.Path = res.Path
	rec.PathLength = res.Len()
	rec.PathCost = res.Cost

	return rec
}
