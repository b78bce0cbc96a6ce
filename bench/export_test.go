package bench_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/bench"
)

func exportBatch() *bench.Batch {
	return &bench.Batch{
		ID:    "test-batch",
		Start: "A",
		End:   "E",
		Records: []bench.Record{
			{
				Algorithm:   "dijkstra",
				Elapsed:     1500 * time.Microsecond,
				MemoryBytes: 2048,
				PathLength:  5,
				PathCost:    7,
				Success:     true,
			},
			{
				Algorithm: "dag",
				Elapsed:   time.Microsecond,
				PathCost:  math.Inf(1),
				Err:       "shortestpath: graph is not a DAG",
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, bench.WriteCSV(&sb, exportBatch()))

	want := strings.Join([]string{
		"algorithm,execution_time,memory_used,path_length,path_cost,success",
		"dijkstra,0.0015,2048,5,7,true",
		"dag,1e-06,0,0,+Inf,false",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestWriteCSV_EmptyBatch(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, bench.WriteCSV(&sb, &bench.Batch{}), bench.ErrEmptyBatch)
	assert.ErrorIs(t, bench.WriteCSV(&sb, nil), bench.ErrEmptyBatch)
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, bench.SaveCSV(path, exportBatch()))

	var sb strings.Builder
	require.NoError(t, bench.WriteCSV(&sb, exportBatch()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sb.String(), string(raw))
}
