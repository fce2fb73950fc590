package twothree

import "iter"

type frame[K, V any] struct {
	n *node[K, V]
	i int // next entry of n to yield
}

// Iterator walks a tree in ascending key order. Each Iterator is an
// independent traversal; the tree must not be modified while it is in use.
type Iterator[K, V any] struct {
	stack []frame[K, V]
	cur   entry[K, V]
	hi    *K
	cmp   func(a, b K) int
}

// Iter returns an iterator positioned before the smallest key.
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{cmp: t.cmp}
	if t.root != nil {
		it.descend(t.root)
	}
	return it
}

// Seek returns an iterator positioned before the first key >= from.
func (t *Tree[K, V]) Seek(from K) *Iterator[K, V] {
	it := &Iterator[K, V]{cmp: t.cmp}
	for n := t.root; n != nil; {
		i, found := n.search(t.cmp, from)
		it.stack = append(it.stack, frame[K, V]{n, i})
		if found || n.leaf() {
			break
		}
		n = n.children[i]
	}
	return it
}

// All yields every entry in ascending key order. Each range over the
// returned sequence starts a fresh traversal.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Until stops the iterator after the last key <= hi.
func (it *Iterator[K, V]) Until(hi K) *Iterator[K, V] {
	it.hi = &hi
	return it
}

// descend pushes n and the leftmost path below it.
func (it *Iterator[K, V]) descend(n *node[K, V]) {
	for {
		it.stack = append(it.stack, frame[K, V]{n, 0})
		if n.leaf() {
			return
		}
		n = n.children[0]
	}
}

// Next advances to the following entry and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		f := it.stack[top]
		if f.i >= len(f.n.entries) {
			it.stack = it.stack[:top]
			continue
		}

		it.cur = f.n.entries[f.i]
		it.stack[top].i++
		if !f.n.leaf() {
			it.descend(f.n.children[f.i+1])
		}

		if it.hi != nil && it.cmp(it.cur.key, *it.hi) > 0 {
			it.stack = nil
			return false
		}
		return true
	}
	return false
}

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K { return it.cur.key }

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V { return it.cur.value }
