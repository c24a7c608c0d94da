package reliability

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/relnum/dpstate"
	"github.com/katalvlaran/relnum/frontier"
	"github.com/katalvlaran/relnum/reldp"
	"github.com/katalvlaran/relnum/relio"
)

// Solve computes the reachable-vertex-count histogram for n vertices, an
// edge sequence in elimination order (the order file's edges), per-edge
// survival probabilities pi already mapped into that same order (see
// relio.MapProbabilities), and a source set. It orchestrates
// frontier.Build -> reldp.BuildLayers -> reldp.Sweep and folds in vertices
// that never appear in any edge, which the frontier DP never sees.
//
// Isolated vertices. A vertex absent from every edge can never change
// component: if it is a source it is reachable with probability 1 (it
// reaches itself); if it is not, it is never reachable. reldp's DP only
// ever tracks the "touched" vertices (those with at least one incident
// edge), producing a histogram over 0..touched; Solve shifts every bucket
// of that histogram up by the isolated-source count and returns a
// histogram over the full 0..n range, exactly accounting for the
// deterministic isolated-source contribution.
//
// Errors. A malformed Layout (frontier width cap exceeded) is a
// ConfigError; a broken internal invariant is an InternalError; a
// histogram that fails to normalise within Config.Epsilon is a
// NumericError returned ALONGSIDE a non-nil Result — a warning, not a
// failure, so callers may log it and still use Result.
func Solve(n int, edges []relio.Edge, pi []float64, sources map[int]struct{}, opts ...Option) (result *Result, err error) {
	// dpstate panics (ErrCnumOverflow) only on a broken invariant, never on
	// user input; convert it to an InternalError at this boundary rather
	// than letting a programmer-error bug crash the whole process.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = InternalError{Err: fmt.Errorf("%w: %v", ErrInvariant, r)}
		}
	}()

	return solve(n, edges, pi, sources, opts...)
}

func solve(n int, edges []relio.Edge, pi []float64, sources map[int]struct{}, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	isSource := func(v int) bool {
		_, ok := sources[v]

		return ok
	}

	touchedSet := make(map[int]struct{}, 2*len(edges))
	for _, e := range edges {
		touchedSet[e.U] = struct{}{}
		touchedSet[e.V] = struct{}{}
	}

	isolatedSources := 0
	for v := range sources {
		if _, ok := touchedSet[v]; !ok {
			isolatedSources++
		}
	}

	var dpHist []float64
	var states int64

	if len(edges) == 0 {
		dpHist = []float64{1}
		states = 1
	} else {
		var frontierOpts []frontier.Option
		if cfg.FrontierCap > 0 {
			frontierOpts = append(frontierOpts, frontier.WithWidthCap(cfg.FrontierCap))
		}
		layout, err := frontier.Build(n, edges, isSource, frontierOpts...)
		if err != nil {
			if errors.Is(err, frontier.ErrWidthExceeded) {
				return nil, ConfigError{Err: fmt.Errorf("%w: %v", ErrFrontierTooWide, err)}
			}

			return nil, InternalError{Err: fmt.Errorf("%w: %v", ErrInvariant, err)}
		}

		layers, err := reldp.BuildLayers(layout, len(touchedSet), isSource, reldp.WithStateCap(cfg.StateCap))
		if err != nil {
			if errors.Is(err, reldp.ErrStateCapExceeded) {
				return nil, ConfigError{Err: err}
			}

			return nil, InternalError{Err: fmt.Errorf("%w: %v", ErrInvariant, err)}
		}

		dpHist, err = reldp.Sweep(layers, pi)
		if err != nil {
			return nil, InternalError{Err: fmt.Errorf("%w: %v", ErrInvariant, err)}
		}
		states = layers.StateCount
	}

	res := make([]float64, n+1)
	sum := 0.0
	for k, mass := range dpHist {
		shifted := k + isolatedSources
		if shifted > n {
			return nil, InternalError{Err: fmt.Errorf("%w: shifted bucket %d exceeds n=%d", ErrInvariant, shifted, n)}
		}
		res[shifted] += mass
		sum += mass
	}

	result := &Result{Histogram: res, Stats: Stats{States: states}}

	if math.Abs(sum-1.0) > cfg.Epsilon {
		return result, NumericError{Sum: sum, Epsilon: cfg.Epsilon}
	}

	return result, nil
}

// CanonicalStateWidth reports dpstate.MaxFrontier, the hard cap on
// simultaneous live frontier vertices; exported here so callers validating
// inputs ahead of Solve don't need to import dpstate directly for a single
// constant.
func CanonicalStateWidth() int {
	return dpstate.MaxFrontier
}
