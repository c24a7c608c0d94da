package relio

import (
	"fmt"
	"io"
)

// WriteGraph writes g back in the same "n m" / "u v"-per-line layout ReadGraph
// expects, so that reading and immediately writing a graph file is identity
// modulo whitespace (spec §8 round-trip property).
func WriteGraph(w io.Writer, g *Graph) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", g.N, len(g.Edges)); err != nil {
		return err
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return err
		}
	}

	return nil
}

// WriteProbabilities writes pi as whitespace-separated decimals, one per
// line, matching the layout ReadProbabilities expects.
func WriteProbabilities(w io.Writer, pi []float64) error {
	for _, p := range pi {
		if _, err := fmt.Fprintf(w, "%.17g\n", p); err != nil {
			return err
		}
	}

	return nil
}
