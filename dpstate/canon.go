package dpstate

// Transition describes the frontier geometry the Canonicaliser needs for one
// edge position: which slots enter, which leave, and which two slots the
// current edge connects. All positions are indices within MFros[i].
type Transition struct {
	// Entering holds positions of vertices whose first incidence is this
	// edge; EnteringSource[k] reports whether Entering[k] is a source.
	Entering       []int
	EnteringSource []bool

	// Leaving holds positions of vertices whose last incidence is this edge.
	Leaving []int

	// Pos0, Pos1 are the in-layer positions of the edge's two endpoints
	// (within MFros[i], after Entering is applied).
	Pos0, Pos1 int

	// Width is len(MFros[i]); NextWidth is len(Fros[i+1]), checked against
	// the successor's actual surviving-slot count in exit as a sanity
	// cross-check between frontier.Build's metadata and this package.
	Width, NextWidth int

	// PruneGate reports whether this position is at or past SrcFinal; the
	// pruning rule only ever fires when this holds.
	PruneGate bool
}

// Outcome is one successor returned by Lo or Hi: either a live State to intern in
// the next layer, or a terminal carrying the final source-connected count.
type Outcome struct {
	State    State
	Terminal bool
	Count    int
}

// Entry builds the intermediate state for predecessor pred and Transition t:
// a copy of pred's frontier slots (which, by construction, occupy the
// leading Width-len(t.Entering) positions of the new layer) plus freshly
// labelled entering slots — source vertices get the reserved label 0,
// others get the next unused label.
func Entry(pred State, t Transition) State {
	var mid State
	for i := range mid.Comp {
		mid.Comp[i] = Absent
	}
	copy(mid.Comp[:], pred.Comp[:t.Width])
	mid.Numv = pred.Numv
	mid.Cnum = pred.Cnum

	for k, pos := range t.Entering {
		if t.EnteringSource[k] {
			mid.Comp[pos] = SourceLabel
		} else {
			mid.Comp[pos] = mid.Cnum
			mid.Cnum++
		}
	}

	return mid
}

// Lo computes the edge-excluded successor: component labels are unchanged
// from mid, then Exit removes leaving slots and renumbers canonically.
func Lo(mid State, t Transition) Outcome {
	return exit(mid, t, -1, -1)
}

// Hi computes the edge-included successor: the components of the edge's two
// endpoints are merged (label 0 wins if either endpoint already carries it,
// otherwise the smaller pre-merge label wins), then Exit proceeds as in Lo.
// A self-loop (t.Pos0 == t.Pos1) degenerates to an identity merge.
func Hi(mid State, t Transition) Outcome {
	return exit(mid, t, mid.Comp[t.Pos0], mid.Comp[t.Pos1])
}

// exit implements phase (c) of the Canonicaliser: it removes the leaving
// slots (tallying their vertices into the appropriate component's off-frontier
// count), then rescans the surviving slots left-to-right to assign canonical
// labels, applying the Hi merge (catTo/catFrom) along the way if requested
// (catTo < 0 signals Lo — no merge).
//
// Pruning: once PruneGate holds, no future edge can ever introduce a new
// source-connected label (all sources have already entered the frontier), so
// if no surviving slot carries label 0, the current off-frontier tally for
// label 0 is final — label 0 can never be touched again. The successor is
// then a terminal carrying that count; any slot group that stays off the
// source component forever is simply not tracked further, since it can never
// contribute to the number of source-connected vertices.
func exit(mid State, t Transition, catTo, catFrom int8) Outcome {
	merging := catTo >= 0

	tmpNumv := mid.Numv
	for _, pos := range t.Leaving {
		tmpNumv[mid.Comp[pos]]++
	}

	var renum [MaxFrontier]int8
	for i := range renum {
		renum[i] = -1
	}
	renum[SourceLabel] = SourceLabel
	if merging {
		if catTo == SourceLabel {
			renum[catFrom] = SourceLabel
		} else if catFrom == SourceLabel {
			renum[catTo] = SourceLabel
		}
	}

	var next State
	for i := range next.Comp {
		next.Comp[i] = Absent
	}

	leavingAt := make(map[int]struct{}, len(t.Leaving))
	for _, pos := range t.Leaving {
		leavingAt[pos] = struct{}{}
	}

	ccNew := int8(1)
	liveHasZero := false
	newPos := 0
	for pos := 0; pos < t.Width; pos++ {
		if _, gone := leavingAt[pos]; gone {
			continue
		}
		val := mid.Comp[pos]
		if renum[val] < 0 {
			renum[val] = ccNew
			ccNew++
			if merging {
				if val == catTo {
					renum[catFrom] = renum[val]
				} else if val == catFrom {
					renum[catTo] = renum[val]
				}
			}
		}
		val = renum[val]
		next.Comp[newPos] = val
		newPos++
		if val == SourceLabel {
			liveHasZero = true
		}
	}
	if int(ccNew) > MaxFrontier {
		// Cannot happen for any input frontier.Build accepted: ccNew is
		// bounded by the number of live slots scanned (<= t.Width <=
		// MaxFrontier), so this only fires if an upstream invariant (the
		// frontier width cap) was already violated.
		panic(ErrCnumOverflow)
	}
	next.Cnum = ccNew

	for c := int8(0); c < mid.Cnum; c++ {
		if renum[c] >= 0 {
			next.Numv[renum[c]] += tmpNumv[c]
		}
	}

	if newPos != t.NextWidth {
		// The surviving-slot count this scan produced must match the
		// frontier metadata's own count of Fros[i+1]; a mismatch means
		// frontier.Build and this canonicaliser disagree about which
		// vertices are still live, an upstream invariant violation. This
		// holds regardless of pruning, since pruning only changes how the
		// already-computed successor is classified.
		panic(ErrWidthMismatch)
	}

	prune := t.PruneGate && !liveHasZero
	if prune {
		return Outcome{State: next, Terminal: true, Count: int(next.Numv[SourceLabel])}
	}

	return Outcome{State: next}
}
