package relio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadGraph parses a plain-text graph file: a header line "n m" followed by
// m lines each "u v" (1-indexed). It is used both for the reference graph
// (graph_file) and the elimination-order graph (order_file); the caller
// decides which role the result plays.
//
// Complexity: O(n+m) time and memory.
func ReadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, m, err := readHeader(sc, path)
	if err != nil {
		return nil, err
	}

	g := &Graph{N: n, Edges: make([]Edge, 0, m)}
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: %s: edge line %d: expected \"u v\", got EOF", ErrMalformed, path, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s: edge line %d: expected 2 fields, got %d", ErrMalformed, path, i, len(fields))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: edge line %d: %v", ErrMalformed, path, i, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: edge line %d: %v", ErrMalformed, path, i, err)
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: %s: edge line %d: (%d,%d) outside [1,%d]", ErrVertexRange, path, i, u, v, n)
		}
		g.Edges = append(g.Edges, Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}

	return g, nil
}

// readHeader scans the "n m" header line and validates it is well-formed.
func readHeader(sc *bufio.Scanner, path string) (n, m int, err error) {
	if !sc.Scan() {
		return 0, 0, fmt.Errorf("%w: %s: missing \"n m\" header", ErrMalformed, path)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %s: header expected 2 fields, got %d", ErrMalformed, path, len(fields))
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: header n: %v", ErrMalformed, path, err)
	}
	m, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: header m: %v", ErrMalformed, path, err)
	}
	if n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("%w: %s: header n,m must be non-negative", ErrMalformed, path)
	}

	return n, m, nil
}

// ReadProbabilities parses m whitespace-separated floats in [0,1], one per
// edge in the graph file's edge order. It returns ErrLengthMismatch if the
// file contains a different number of values than want.
func ReadProbabilities(path string, want int) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	fields := strings.Fields(string(raw))
	if len(fields) != want {
		return nil, fmt.Errorf("%w: %s: got %d values, want %d", ErrLengthMismatch, path, len(fields), want)
	}

	pi := make([]float64, want)
	for i, tok := range fields {
		p, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: value %d: %v", ErrMalformed, path, i, err)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: %s: value %d: %g", ErrProbabilityRange, path, i, p)
		}
		pi[i] = p
	}

	return pi, nil
}

// ReadSources parses whitespace-separated 1-indexed vertex IDs constituting
// S. Duplicates collapse silently.
func ReadSources(path string, n int) (map[int]struct{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	fields := strings.Fields(string(raw))
	srcs := make(map[int]struct{}, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: source %d: %v", ErrMalformed, path, i, err)
		}
		if v < 1 || v > n {
			return nil, fmt.Errorf("%w: %s: source %d: %d outside [1,%d]", ErrVertexRange, path, i, v, n)
		}
		srcs[v] = struct{}{}
	}

	return srcs, nil
}

// EdgeIndex returns a lookup function mapping an undirected endpoint pair to
// its index within g's edge sequence, regardless of endpoint order. Used to
// map the order file's edges back to the graph file's probability slots.
//
// Multi-edges are handled transparently: each canonical pair keeps a FIFO
// queue of its graph-file indices, so the k-th order-file occurrence of a
// pair resolves to the k-th graph-file occurrence, rather than every
// occurrence collapsing onto the same (last-written) index.
func EdgeIndex(g *Graph) func(u, v int) (int, error) {
	idx := make(map[[2]int][]int, len(g.Edges))
	for i, e := range g.Edges {
		p := canonPair(e.U, e.V)
		idx[p] = append(idx[p], i)
	}

	return func(u, v int) (int, error) {
		p := canonPair(u, v)
		queue := idx[p]
		if len(queue) == 0 {
			return 0, fmt.Errorf("%w: (%d,%d)", ErrUnknownEdge, u, v)
		}

		i := queue[0]
		idx[p] = queue[1:]

		return i, nil
	}
}

func canonPair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// MapProbabilities reorders the probabilities read for the reference graph H
// into the edge order of the order-graph G, via H's edge index.
func MapProbabilities(orderGraph *Graph, refProbabilities []float64, refIndex func(u, v int) (int, error)) ([]float64, error) {
	pi := make([]float64, len(orderGraph.Edges))
	for i, e := range orderGraph.Edges {
		j, err := refIndex(e.U, e.V)
		if err != nil {
			return nil, err
		}
		pi[i] = refProbabilities[j]
	}

	return pi, nil
}
