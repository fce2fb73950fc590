// Package gbtree adapts google/btree's generic B-tree, a configurable-degree
// relative of the 2-3 tree, to the Index interface.
package gbtree

import (
	"github.com/cockroachdb/errors"
	"github.com/google/btree"

	"github.com/nettoyeur/Basic/index"
)

var _ index.Index = (*GBTree)(nil)

type item struct {
	key int64
	val []byte
}

func less(a, b item) bool { return a.key < b.key }

type GBTree struct {
	tree *btree.BTreeG[item]
}

// New returns an empty tree whose nodes hold between degree-1 and
// 2*degree-1 items.
func New(degree int) *GBTree {
	if degree < 2 {
		degree = 2
	}
	return &GBTree{tree: btree.NewG[item](degree, less)}
}

func (g *GBTree) Insert(key int64, value []byte) error {
	if value == nil {
		return errors.Newf("gbtree: nil value for key %d", key)
	}
	g.tree.ReplaceOrInsert(item{key, value})
	return nil
}

func (g *GBTree) Get(key int64) ([]byte, error) {
	it, ok := g.tree.Get(item{key: key})
	if !ok {
		return nil, errors.Wrapf(index.ErrNotFound, "key %d", key)
	}
	return it.val, nil
}

func (g *GBTree) Delete(key int64) error {
	if _, ok := g.tree.Delete(item{key: key}); !ok {
		return errors.Wrapf(index.ErrNotFound, "key %d", key)
	}
	return nil
}

func (g *GBTree) Range(start, end int64) (index.Iterator, error) {
	it := &sliceIterator{idx: -1}
	g.tree.AscendGreaterOrEqual(item{key: start}, func(i item) bool {
		if i.key > end {
			return false
		}
		it.items = append(it.items, i)
		return true
	})
	return it, nil
}

func (g *GBTree) Len() int     { return g.tree.Len() }
func (g *GBTree) Close() error { return nil }

type sliceIterator struct {
	items []item
	idx   int
}

func (it *sliceIterator) Next() bool    { it.idx++; return it.idx < len(it.items) }
func (it *sliceIterator) Key() int64    { return it.items[it.idx].key }
func (it *sliceIterator) Value() []byte { return it.items[it.idx].val }
func (it *sliceIterator) Error() error  { return nil }
func (it *sliceIterator) Close() error  { return nil }
