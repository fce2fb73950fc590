package twothree

import "slices"

const maxEntries = 2

type entry[K, V any] struct {
	key   K
	value V
}

// node is a 2-node or 3-node. Leaves have nil children; internal nodes have
// len(entries)+1 children.
type node[K, V any] struct {
	entries  []entry[K, V]
	children []*node[K, V]
}

// promotion is what a node hands to its parent after splitting: the middle
// entry to absorb and the sibling holding the entries above it.
type promotion[K, V any] struct {
	promoted entry[K, V]
	sibling  *node[K, V]
}

func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{entries: []entry[K, V]{{key, value}}}
}

func (n *node[K, V]) leaf() bool { return len(n.children) == 0 }

// search returns the position of key among the node's entries and whether it
// is present there. When absent, the position is also the child to descend.
func (n *node[K, V]) search(cmp func(a, b K) int, key K) (int, bool) {
	return slices.BinarySearchFunc(n.entries, key, func(e entry[K, V], k K) int {
		return cmp(e.key, k)
	})
}

// insert puts key below n. It returns nil unless n overflowed and split.
func (n *node[K, V]) insert(cmp func(a, b K) int, key K, value V) *promotion[K, V] {
	i, found := n.search(cmp, key)
	if found {
		n.entries[i].value = value
		return nil
	}

	if n.leaf() {
		n.entries = slices.Insert(n.entries, i, entry[K, V]{key, value})
	} else {
		s := n.children[i].insert(cmp, key, value)
		if s == nil {
			return nil
		}
		n.entries = slices.Insert(n.entries, i, s.promoted)
		n.children = slices.Insert(n.children, i+1, s.sibling)
	}

	if len(n.entries) <= maxEntries {
		return nil
	}
	return n.split()
}

// split divides a node holding three entries (and four children when
// internal) into itself with the smallest entry and a sibling with the
// largest, promoting the middle one.
func (n *node[K, V]) split() *promotion[K, V] {
	sibling := &node[K, V]{entries: []entry[K, V]{n.entries[2]}}
	promoted := n.entries[1]
	clear(n.entries[1:])
	n.entries = n.entries[:1]

	if !n.leaf() {
		sibling.children = []*node[K, V]{n.children[2], n.children[3]}
		clear(n.children[2:])
		n.children = n.children[:2]
	}
	return &promotion[K, V]{promoted: promoted, sibling: sibling}
}

func (n *node[K, V]) find(cmp func(a, b K) int, key K) (*entry[K, V], bool) {
	for {
		i, found := n.search(cmp, key)
		if found {
			return &n.entries[i], true
		}
		if n.leaf() {
			return nil, false
		}
		n = n.children[i]
	}
}

// height counts edges down the leftmost path; leaves are depth-equal.
func (n *node[K, V]) height() int {
	h := 0
	for !n.leaf() {
		n = n.children[0]
		h++
	}
	return h
}

func (n *node[K, V]) size() int {
	s := len(n.entries)
	for _, c := range n.children {
		s += c.size()
	}
	return s
}
