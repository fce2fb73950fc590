package twothree

// validate checks n and its subtree against the open interval (lo, hi); a nil
// bound is unbounded. It returns the depth of the subtree's leaves.
func (n *node[K, V]) validate(cmp func(a, b K) int, lo, hi *K, depth int) (int, error) {
	if len(n.entries) == 0 || len(n.entries) > maxEntries {
		return 0, violation("node at depth %d holds %d entries", depth, len(n.entries))
	}
	if !n.leaf() && len(n.children) != len(n.entries)+1 {
		return 0, violation("node at depth %d has %d entries but %d children",
			depth, len(n.entries), len(n.children))
	}

	for i := range n.entries {
		k := &n.entries[i].key
		if i > 0 && cmp(n.entries[i-1].key, *k) >= 0 {
			return 0, violation("node at depth %d has unordered entries", depth)
		}
		if lo != nil && cmp(*k, *lo) <= 0 {
			return 0, violation("node at depth %d has a key below its lower bound", depth)
		}
		if hi != nil && cmp(*k, *hi) >= 0 {
			return 0, violation("node at depth %d has a key above its upper bound", depth)
		}
	}

	if n.leaf() {
		return depth, nil
	}

	leafDepth := -1
	for i, c := range n.children {
		if c == nil {
			return 0, violation("node at depth %d has nil child %d", depth, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.entries[i-1].key
		}
		if i < len(n.entries) {
			chi = &n.entries[i].key
		}
		d, err := c.validate(cmp, clo, chi, depth+1)
		if err != nil {
			return 0, err
		}
		if leafDepth >= 0 && d != leafDepth {
			return 0, violation("leaves at depths %d and %d under node at depth %d",
				leafDepth, d, depth)
		}
		leafDepth = d
	}
	return leafDepth, nil
}
