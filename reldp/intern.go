package reldp

import (
	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/relnum/dpstate"
)

// internTable is a flat open-addressed hash table mapping a dpstate.State's
// 32-byte canonical key to the int64 id it was first interned under within
// one layer. Buckets are selected from dpstate.Hash (xxhash.Sum64 over the
// key) rather than a language-default hasher, per the mixing-quality
// requirement on the state cache; collisions resolve by linear probing with
// a direct [32]byte compare, so hash quality only affects probe length, not
// correctness.
type internTable struct {
	keys [][32]byte
	ids  []int64
	used []bool
	mask uint64
	n    int
}

func newInternTable(hint int) *internTable {
	size := 16
	for size < hint*2 {
		size <<= 1
	}

	return &internTable{
		keys: make([][32]byte, size),
		ids:  make([]int64, size),
		used: make([]bool, size),
		mask: uint64(size - 1),
	}
}

// intern returns the existing id for s if already present, otherwise
// assigns it the next sequential id (len(order) at call time) and appends s
// to order.
func (t *internTable) intern(s dpstate.State, order *[]dpstate.State) int64 {
	if t.n*10 >= len(t.used)*7 {
		t.grow()
	}

	key := s.Key()
	idx := dpstate.Hash(s) & t.mask
	for t.used[idx] {
		if t.keys[idx] == key {
			return t.ids[idx]
		}
		idx = (idx + 1) & t.mask
	}

	id := int64(len(*order))
	*order = append(*order, s)
	t.used[idx] = true
	t.keys[idx] = key
	t.ids[idx] = id
	t.n++

	return id
}

func (t *internTable) grow() {
	old := t
	bigger := &internTable{
		keys: make([][32]byte, len(old.used)*2),
		ids:  make([]int64, len(old.used)*2),
		used: make([]bool, len(old.used)*2),
		mask: uint64(len(old.used)*2 - 1),
	}
	for i, u := range old.used {
		if !u {
			continue
		}
		idx := xxhash.Sum64(old.keys[i][:]) & bigger.mask
		for bigger.used[idx] {
			idx = (idx + 1) & bigger.mask
		}
		bigger.used[idx] = true
		bigger.keys[idx] = old.keys[i]
		bigger.ids[idx] = old.ids[i]
	}
	bigger.n = old.n
	*t = *bigger
}
