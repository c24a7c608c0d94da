package dpstate

import "github.com/cespare/xxhash/v2"

// Hash mixes a State's 32-byte key through xxhash rather than relying on a
// language-default map hasher, so the reldp intern table's bucket spread is
// reproducible across Go versions and architectures.
func Hash(s State) uint64 {
	k := s.Key()

	return xxhash.Sum64(k[:])
}
