package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pathbench/core"
)

// Sentinel errors for CSV graph exchange.
var (
	// ErrBadHeader is returned when the CSV header lacks the source/target
	// columns.
	ErrBadHeader = errors.New("graphio: csv header must contain source and target columns")

	// ErrBadRecord is returned (wrapped, with row context) for malformed rows.
	ErrBadRecord = errors.New("graphio: malformed csv record")
)

// LoadCSV reads an edge-list CSV into a weighted graph.
//
// Expected header: source,target[,weight]. Column order is free; extra
// columns are ignored. A missing or empty weight cell defaults to
// core.DefaultEdgeWeight, keeping the unspecified-weight rule uniform with
// in-memory graphs.
// Complexity: O(E).
func LoadCSV(r io.Reader, directed bool) (*core.Graph, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("graphio: reading csv header: %w", err)
	}

	// Map the column layout; only source and target are mandatory.
	srcCol, dstCol, weightCol := -1, -1, -1
	for i, name := range header {
		switch name {
		case "source":
			srcCol = i
		case "target":
			dstCol = i
		case "weight":
			weightCol = i
		}
	}
	if srcCol < 0 || dstCol < 0 {
		return nil, ErrBadHeader
	}

	opts := []core.GraphOption{core.WithWeighted()}
	if directed {
		opts = append(opts, core.WithDirected(true))
	}
	g := core.NewGraph(opts...)

	for row := 2; ; row++ {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("graphio: reading csv row %d: %w", row, rerr)
		}
		if len(record) <= srcCol || len(record) <= dstCol {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrBadRecord, row, len(record))
		}

		weight := core.DefaultEdgeWeight
		if weightCol >= 0 && weightCol < len(record) && record[weightCol] != "" {
			weight, rerr = strconv.ParseFloat(record[weightCol], 64)
			if rerr != nil {
				return nil, fmt.Errorf("%w: row %d weight %q", ErrBadRecord, row, record[weightCol])
			}
		}
		if err = g.AddEdge(record[srcCol], record[dstCol], weight); err != nil {
			return nil, fmt.Errorf("graphio: csv row %d: %w", row, err)
		}
	}

	return g, nil
}

// WriteCSV writes g as an edge-list CSV with the source,target,weight header.
// Undirected edges are written once. Weights use the shortest round-trippable
// float formatting.
// Complexity: O(E log E) (edges are emitted in sorted order).
func WriteCSV(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("graphio: graph is nil")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"source", "target", "weight"}); err != nil {
		return fmt.Errorf("graphio: writing csv header: %w", err)
	}
	for _, e := range g.Edges() {
		record := []string{
			e.From,
			e.To,
			strconv.FormatFloat(g.EdgeWeight(e), 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("graphio: writing edge %s→%s: %w", e.From, e.To, err)
		}
	}
	writer.Flush()

	return writer.Error()
}
