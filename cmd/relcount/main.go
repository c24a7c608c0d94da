// Command relcount computes the probability distribution of the number of
// vertices reachable from a source set in an undirected graph whose edges
// fail independently. It takes four positional file arguments, prints an
// n+1 line histogram to stdout, and reports timing/state-count diagnostics
// to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/relnum/relio"
	"github.com/katalvlaran/relnum/reliability"
)

func usage(prog string) string {
	return fmt.Sprintf("Usage: %s [graph_file] [probability_file] [source_file] [order_file]\n", prog)
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		fmt.Fprint(os.Stderr, usage(os.Args[0]))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 5 {
		return errors.New("too few arguments")
	}

	graphFile, probFile, sourceFile, orderFile := args[1], args[2], args[3], args[4]

	refGraph, err := relio.ReadGraph(graphFile)
	if err != nil {
		return reliability.InputError{Stage: fmt.Sprintf("graph file %s", graphFile), Err: err}
	}

	refProb, err := relio.ReadProbabilities(probFile, refGraph.NumE())
	if err != nil {
		return reliability.InputError{Stage: fmt.Sprintf("probability file %s", probFile), Err: err}
	}

	sources, err := relio.ReadSources(sourceFile, refGraph.N)
	if err != nil {
		return reliability.InputError{Stage: fmt.Sprintf("source vertices file %s", sourceFile), Err: err}
	}

	orderGraph, err := relio.ReadGraph(orderFile)
	if err != nil {
		return reliability.InputError{Stage: fmt.Sprintf("order file %s", orderFile), Err: err}
	}

	pi, err := relio.MapProbabilities(orderGraph, refProb, relio.EdgeIndex(refGraph))
	if err != nil {
		return reliability.InputError{Stage: "mapping edge probabilities", Err: err}
	}

	start := time.Now()

	result, solveErr := reliability.Solve(refGraph.N, orderGraph.Edges, pi, sources)
	var numErr reliability.NumericError
	switch {
	case solveErr == nil:
		// normalised within tolerance, nothing to report
	case errors.As(solveErr, &numErr):
		fmt.Fprintln(stderr, "WARNING:", numErr.Error())
	default:
		return solveErr
	}

	elapsed := time.Since(start)

	if err := reliability.Report(stdout, result.Histogram); err != nil {
		return fmt.Errorf("writing histogram: %w", err)
	}

	fmt.Fprintf(stderr, "calc time: %.6f ms\n", float64(elapsed.Microseconds())/1000.0)
	fmt.Fprintf(stderr, "#(states): %d\n", result.Stats.States)

	return nil
}
