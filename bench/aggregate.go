package bench

import "fmt"

// Summary condenses a batch into headline numbers for reports and logs.
type Summary struct {
	Total     int     // records in the batch
	Succeeded int     // records that produced a path
	NoPath    int     // clean runs that found no path
	Errored   int     // runs that errored, panicked, or timed out
	BestAlgo  string  // minimum-cost successful algorithm ("" when none succeeded)
	BestCost  float64 // path cost of the winning record
}

// Best returns the winning record of a batch: the successful record with the
// lowest path cost, ties broken by elapsed time and then by algorithm name
// so the winner is stable.
//
// Errors: ErrEmptyBatch when the batch holds no records, ErrNoneSucceeded
// when no record found a path.
func Best(b *Batch) (Record, error) {
	if b == nil || len(b.Records) == 0 {
		return Record{}, ErrEmptyBatch
	}

	var (
		best  Record
		found bool
	)
	for _, rec := range b.Records {
		if !rec.Success {
			continue
		}
		if !found || cheaper(rec, best) {
			best = rec
			found = true
		}
	}
	if !found {
		return Record{}, fmt.Errorf("%w: %s -> %s", ErrNoneSucceeded, b.Start, b.End)
	}

	return best, nil
}

// Summarize tallies a batch, distinguishing clean no-path outcomes from
// errored runs. The zero Summary is returned for a nil or empty batch.
func Summarize(b *Batch) Summary {
	var s Summary
	if b == nil {
		return s
	}

	s.Total = len(b.Records)
	for _, rec := range b.Records {
		switch {
		case rec.Success:
			s.Succeeded++
		case rec.Errored():
			s.Errored++
		default:
			s.NoPath++
		}
	}

	if best, err := Best(b); err == nil {
		s.BestAlgo = best.Algorithm
		s.BestCost = best.PathCost
	}

	return s
}

// cheaper orders records by (PathCost, Elapsed, Algorithm) ascending.
func cheaper(a, b Record) bool {
	if a.PathCost != b.PathCost {
		return a.PathCost < b.PathCost
	}
	if a.Elapsed != b.Elapsed {
		return a.Elapsed < b.Elapsed
	}

	return a.Algorithm < b.Algorithm
}
