package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed column set of an exported batch. Consumers key on
// these names, so the order and spelling never change.
var csvHeader = []string{
	"algorithm",
	"execution_time",
	"memory_used",
	"path_length",
	"path_cost",
	"success",
}

// WriteCSV streams a batch to w as CSV, one row per record, preceded by the
// fixed header. Execution time is written in seconds, costs with %g so
// +Inf round-trips as "+Inf".
func WriteCSV(w io.Writer, b *Batch) error {
	if b == nil || len(b.Records) == 0 {
		return ErrEmptyBatch
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}
	for _, rec := range b.Records {
		row := []string{
			rec.Algorithm,
			strconv.FormatFloat(rec.Elapsed.Seconds(), 'g', -1, 64),
			strconv.FormatUint(rec.MemoryBytes, 10),
			strconv.Itoa(rec.PathLength),
			strconv.FormatFloat(rec.PathCost, 'g', -1, 64),
			strconv.FormatBool(rec.Success),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: write record %q: %w", rec.Algorithm, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV writes a batch to the named file, creating or truncating it.
func SaveCSV(path string, b *Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", path, err)
	}
	if err := WriteCSV(f, b); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
