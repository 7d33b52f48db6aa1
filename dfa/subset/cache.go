package subset

import "encoding/binary"

// cache maps a canonicalized NFA state set to the DFA state index already
// assigned to it, so the construction loop can dedupe subsets it has
// already discovered instead of growing the automaton without bound.
type cache struct {
	seen map[string]uint32
}

func newCache() *cache {
	return &cache{seen: make(map[string]uint32)}
}

// key turns a sorted state-set into a comparable, hashable string. Sets
// are small (bounded by the source NFA's size) so a flat byte encoding is
// simpler than a custom hash and just as fast in practice.
func key(set []uint32) string {
	buf := make([]byte, 4*len(set))
	for i, s := range set {
		binary.LittleEndian.PutUint32(buf[i*4:], s)
	}
	return string(buf)
}

// get returns the DFA state index already assigned to set, if any.
func (c *cache) get(set []uint32) (uint32, bool) {
	id, ok := c.seen[key(set)]
	return id, ok
}

// put records that set maps to the given DFA state index.
func (c *cache) put(set []uint32, id uint32) {
	c.seen[key(set)] = id
}
