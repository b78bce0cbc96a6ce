// Package main provides the pathbench CLI: a shortest-path algorithm
// comparison harness over CSV, fixture, or randomly generated graphs.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/bench"
	"github.com/katalvlaran/pathbench/core"
	"github.com/katalvlaran/pathbench/graphio"
)

// Version is the current pathbench CLI version.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "pathbench",
	Short:   "pathbench - compare shortest-path algorithms on the same graph",
	Long:    `pathbench runs a set of shortest-path algorithms against a single (start, end) query, isolates failures per algorithm, and reports time, memory, and path quality side by side.`,
	Version: Version,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Benchmark algorithms against one query",
	RunE:  runBenchmark,
}

var algosCmd = &cobra.Command{
	Use:   "algos",
	Short: "List the available algorithms",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range bench.Algorithms() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

var runFlags struct {
	csvPath   string
	fixture   string
	randomN   int
	edgeProb  float64
	seed      int64
	directed  bool
	start     string
	end       string
	algos     []string
	timeout   time.Duration
	outPath   string
	suitePath string
	verbose   bool
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.csvPath, "csv", "", "load the graph from an edge-list CSV file")
	f.StringVar(&runFlags.fixture, "fixture", "", "use a built-in graph: simple, negative, or disconnected")
	f.IntVar(&runFlags.randomN, "random", 0, "generate a random graph with this many vertices")
	f.Float64Var(&runFlags.edgeProb, "edge-prob", 0.1, "edge probability for --random")
	f.Int64Var(&runFlags.seed, "seed", 42, "random seed for --random")
	f.BoolVar(&runFlags.directed, "directed", true, "treat the graph as directed (--csv and --random)")
	f.StringVar(&runFlags.start, "start", "", "start vertex ID")
	f.StringVar(&runFlags.end, "end", "", "end vertex ID")
	f.StringSliceVar(&runFlags.algos, "algorithms", nil, "algorithms to run (default: all)")
	f.DurationVar(&runFlags.timeout, "timeout", 0, "per-algorithm timeout (0 = none)")
	f.StringVar(&runFlags.outPath, "out", "", "write results to this CSV file")
	f.StringVar(&runFlags.suitePath, "suite", "", "load query, timeout, and algorithm list from a YAML suite file")
	f.BoolVar(&runFlags.verbose, "verbose", false, "log per-algorithm progress")

	rootCmd.AddCommand(runCmd, algosCmd)
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	logger := newLogger(runFlags.verbose)

	// A suite file supplies the query; explicit flags override it.
	if runFlags.suitePath != "" {
		if err := applySuite(runFlags.suitePath); err != nil {
			return err
		}
	}
	if runFlags.start == "" || runFlags.end == "" {
		return fmt.Errorf("both --start and --end are required")
	}

	g, err := loadGraph()
	if err != nil {
		return err
	}

	algos, err := bench.Select(runFlags.algos)
	if err != nil {
		return err
	}

	opts := []bench.Option{bench.WithLogger(logger)}
	if runFlags.timeout > 0 {
		opts = append(opts, bench.WithTimeout(runFlags.timeout))
	}

	batch, err := bench.Run(cmd.Context(), algos, g, runFlags.start, runFlags.end, opts...)
	if err != nil {
		return err
	}

	printBatch(cmd, batch)

	if runFlags.outPath != "" {
		if err := bench.SaveCSV(runFlags.outPath, batch); err != nil {
			return err
		}
		logger.Info().Str("path", runFlags.outPath).Msg("results written")
	}

	return nil
}

// applySuite fills unset run flags from a YAML suite description.
func applySuite(path string) error {
	s, err := bench.LoadSuiteFile(path)
	if err != nil {
		return err
	}
	if runFlags.start == "" {
		runFlags.start = s.Start
	}
	if runFlags.end == "" {
		runFlags.end = s.End
	}
	if len(runFlags.algos) == 0 {
		runFlags.algos = s.Algorithms
	}
	if runFlags.timeout == 0 {
		d, derr := s.TimeoutDuration()
		if derr != nil {
			return derr
		}
		runFlags.timeout = d
	}

	return nil
}

// loadGraph resolves the graph source flags: exactly one of --csv, --fixture,
// or --random must be set.
func loadGraph() (*core.Graph, error) {
	sources := 0
	for _, set := range []bool{runFlags.csvPath != "", runFlags.fixture != "", runFlags.randomN > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, fmt.Errorf("exactly one of --csv, --fixture, or --random is required")
	}

	switch {
	case runFlags.csvPath != "":
		f, err := os.Open(runFlags.csvPath)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", runFlags.csvPath, err)
		}
		defer f.Close()

		return graphio.LoadCSV(f, runFlags.directed)
	case runFlags.fixture != "":
		switch runFlags.fixture {
		case "simple":
			return graphio.SimpleWeighted(), nil
		case "negative":
			return graphio.NegativeWeight(), nil
		case "disconnected":
			return graphio.Disconnected(), nil
		default:
			return nil, fmt.Errorf("unknown fixture %q (want simple, negative, or disconnected)", runFlags.fixture)
		}
	default:
		return graphio.RandomGraph(graphio.RandomOptions{
			NumVertices: runFlags.randomN,
			EdgeProb:    runFlags.edgeProb,
			Directed:    runFlags.directed,
			Seed:        runFlags.seed,
		})
	}
}

// printBatch renders the per-algorithm table and the batch summary.
func printBatch(cmd *cobra.Command, batch *bench.Batch) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "batch %s  query %s -> %s\n\n", batch.ID, batch.Start, batch.End)
	fmt.Fprintf(out, "%-16s %12s %12s %6s %10s  %s\n",
		"ALGORITHM", "TIME", "MEM", "HOPS", "COST", "STATUS")
	for _, rec := range batch.Records {
		status := "ok"
		switch {
		case rec.Errored():
			status = "error: " + rec.Err
		case !rec.Success:
			status = "no path"
		}
		fmt.Fprintf(out, "%-16s %12s %12d %6d %10g  %s\n",
			rec.Algorithm, rec.Elapsed, rec.MemoryBytes, rec.PathLength, rec.PathCost, status)
	}

	s := bench.Summarize(batch)
	fmt.Fprintf(out, "\n%d run, %d succeeded, %d no-path, %d errored\n",
		s.Total, s.Succeeded, s.NoPath, s.Errored)
	if s.BestAlgo != "" {
		fmt.Fprintf(out, "best: %s (cost %g)\n", s.BestAlgo, s.BestCost)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
