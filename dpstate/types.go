package dpstate

// MaxFrontier bounds the number of simultaneously live frontier slots; it
// matches frontier.MaxFrontier and is restated here so dpstate has no
// import-time dependency on the frontier package's Build logic, only on the
// width contract it relies on.
const MaxFrontier = 16

// Absent marks a frontier slot with no live component.
const Absent int8 = -1

// SourceLabel is the component label permanently reserved for the
// source-connected class: label 0 always denotes "source-connected" even
// in states where no live slot currently carries it.
const SourceLabel int8 = 0

// State encodes a partial partition of frontier vertices into components,
// plus, per component label, the count of already-eliminated vertices that
// belonged to it.
//
//   - Comp[s] is the component label of frontier slot s, or Absent.
//   - Numv[c] counts off-frontier vertices whose final component was c.
//   - Cnum is the number of live component labels (0..Cnum-1).
//
// Canonical order: scanning Comp left-to-right ignoring Absent, labels
// appear as 0 (if a source-connected component is present on-frontier),
// then 1, 2, ... without gaps.
type State struct {
	Comp [MaxFrontier]int8
	Numv [MaxFrontier]uint8
	Cnum int8
}

// Root returns the initial state for layer 0: no frontier slots occupied,
// one reserved label (0), no eliminated vertices.
func Root() State {
	var s State
	for i := range s.Comp {
		s.Comp[i] = Absent
	}
	s.Cnum = 1

	return s
}

// Key packs Comp then Numv into a 32-byte array suitable for equality and
// for hashing (see Hash), per the fixed-width bitpacked-state design.
func (s State) Key() [32]byte {
	var k [32]byte
	for i := 0; i < MaxFrontier; i++ {
		k[i] = byte(s.Comp[i])
		k[MaxFrontier+i] = s.Numv[i]
	}

	return k
}
