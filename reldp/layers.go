package reldp

import (
	"github.com/katalvlaran/relnum/dpstate"
	"github.com/katalvlaran/relnum/frontier"
)

// BuildLayers walks layout edge by edge, interning the canonical state
// produced at each frontier position into Layers.Blocks. Layer i holds one
// Block per state reachable after processing edges 0..i-1; Layers.Blocks[0]
// always holds exactly the root state (no frontier slots occupied yet).
//
// touched is the number of distinct vertices that appear in at least one
// edge — the maximum bucket Sweep can ever populate, since vertices with no
// incident edge never enter the frontier at all and are folded in
// separately by the caller (reliability.Solve shifts this sub-histogram by
// the isolated source count). BuildLayers requires layout.M > 0; an
// edgeless graph has nothing for the frontier DP to do and must be handled
// by the caller directly.
//
// Lifecycle: only the current layer's state order and its successor's
// intern table are held at once; once layer i+1 closes, layer i's
// intermediate bookkeeping (beyond the finished Blocks[i] slice) is
// discardable by the garbage collector, matching the arena-per-layer
// design the frontier DP calls for.
func BuildLayers(layout *frontier.Layout, touched int, isSource func(int) bool, opts ...Option) (*Layers, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := layout.M
	lay := &Layers{
		N:      touched,
		Blocks: make([][]Block, m+1),
	}

	curStates := []dpstate.State{dpstate.Root()}
	lay.Blocks[0] = make([]Block, 1)
	lay.StateCount = 1

	for i := 0; i < m; i++ {
		t := dpstate.Transition{
			Entering:  layout.FEnt[i],
			Leaving:   layout.FLve[i],
			Pos0:      layout.VPos[i].Pos0,
			Pos1:      layout.VPos[i].Pos1,
			Width:     len(layout.MFros[i]),
			NextWidth: len(layout.Fros[i+1]),
			PruneGate: i >= layout.SrcFinal,
		}
		if len(t.Entering) > 0 {
			t.EnteringSource = make([]bool, len(t.Entering))
			for k, pos := range t.Entering {
				t.EnteringSource[k] = isSource(layout.MFros[i][pos])
			}
		}

		nextTable := newInternTable(len(curStates) * 2)
		var nextStates []dpstate.State
		blocks := make([]Block, len(curStates))

		for idx, pred := range curStates {
			mid := dpstate.Entry(pred, t)

			lo := dpstate.Lo(mid, t)
			blocks[idx].Lo = resolveOutcome(lo, nextTable, &nextStates)

			hi := dpstate.Hi(mid, t)
			blocks[idx].Hi = resolveOutcome(hi, nextTable, &nextStates)
		}

		lay.Blocks[i] = blocks
		lay.StateCount += int64(len(nextStates))
		if cfg.StateCap > 0 && lay.StateCount > cfg.StateCap {
			return nil, ErrStateCapExceeded
		}

		lay.Blocks[i+1] = make([]Block, len(nextStates))
		curStates = nextStates
	}

	return lay, nil
}

func resolveOutcome(o dpstate.Outcome, table *internTable, order *[]dpstate.State) int64 {
	if o.Terminal {
		return EncodeTerminal(o.Count)
	}

	return table.intern(o.State, order)
}
