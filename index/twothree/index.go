package twothree

import (
	"github.com/cockroachdb/errors"

	"github.com/nettoyeur/Basic/index"
)

var _ index.Index = (*Index)(nil)

// Index exposes a Tree[int64, []byte] through the index.Index interface.
type Index struct {
	tree *Tree[int64, []byte]
}

// NewIndex returns an empty index. Invariant checks are off unless requested
// through opts, since the benchmark loads millions of keys.
func NewIndex(opts ...Option) *Index {
	opts = append([]Option{WithInvariantChecks(false)}, opts...)
	return &Index{tree: New[int64, []byte](opts...)}
}

// Tree returns the underlying tree.
func (x *Index) Tree() *Tree[int64, []byte] { return x.tree }

func (x *Index) Insert(key int64, value []byte) error {
	return x.tree.Put(key, value)
}

func (x *Index) Get(key int64) ([]byte, error) {
	v, ok := x.tree.Find(key)
	if !ok {
		return nil, errors.Wrapf(index.ErrNotFound, "key %d", key)
	}
	return v, nil
}

func (x *Index) Delete(key int64) error {
	return x.tree.Delete(key)
}

func (x *Index) Range(start, end int64) (index.Iterator, error) {
	return &rangeIterator{it: x.tree.Seek(start).Until(end)}, nil
}

func (x *Index) Close() error { return nil }

type rangeIterator struct {
	it *Iterator[int64, []byte]
}

func (r *rangeIterator) Next() bool    { return r.it.Next() }
func (r *rangeIterator) Key() int64    { return r.it.Key() }
func (r *rangeIterator) Value() []byte { return r.it.Value() }
func (r *rangeIterator) Error() error  { return nil }
func (r *rangeIterator) Close() error  { return nil }
