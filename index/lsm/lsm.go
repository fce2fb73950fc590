// Package lsm wraps Pebble (CockroachDB's LSM storage engine) behind the
// common Index interface so it can be benchmarked alongside the 2-3 tree.
package lsm

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"

	"github.com/nettoyeur/Basic/index"
)

var _ index.Index = (*LSM)(nil)

type LSM struct {
	db *pebble.DB
}

// Open opens (or creates) a Pebble database at dir. An empty dir keeps the
// whole store in memory. log may be nil.
func Open(dir string, log *zap.SugaredLogger) (*LSM, error) {
	opts := &pebble.Options{
		MemTableSize: 16 << 20,
		// Keep several memtables so one can be flushed while another is active.
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
	if dir == "" {
		dir = "lsm"
		opts.FS = vfs.NewMem()
	}
	if log != nil {
		opts.Logger = log
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrap(err, "lsm: open")
	}
	return &LSM{db: db}, nil
}

// Close cleanly shuts down Pebble, flushing any in-memory state.
func (l *LSM) Close() error {
	return l.db.Close()
}

func (l *LSM) Insert(key int64, value []byte) error {
	if value == nil {
		return errors.Newf("lsm: nil value for key %d", key)
	}
	return l.db.Set(index.EncodeKey(key), value, pebble.NoSync)
}

func (l *LSM) Get(key int64) ([]byte, error) {
	val, closer, err := l.db.Get(index.EncodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(index.ErrNotFound, "key %d", key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "lsm: get")
	}
	// val is only valid until closer.Close().
	result := make([]byte, len(val))
	copy(result, val)
	return result, closer.Close()
}

func (l *LSM) Delete(key int64) error {
	return errors.Wrap(l.db.Delete(index.EncodeKey(key), pebble.NoSync), "lsm: delete")
}

// Range returns an iterator over all keys in [start, end] inclusive.
func (l *LSM) Range(start, end int64) (index.Iterator, error) {
	if start > end {
		return &rangeIterator{done: true}, nil
	}
	opts := &pebble.IterOptions{LowerBound: index.EncodeKey(start)}
	// UpperBound is exclusive; MaxInt64 has no successor, so leave it open.
	if end < 1<<63-1 {
		opts.UpperBound = index.EncodeKey(end + 1)
	}
	iter, err := l.db.NewIter(opts)
	if err != nil {
		return nil, errors.Wrap(err, "lsm: range")
	}
	return &rangeIterator{iter: iter, first: true}, nil
}

// ─── Range Iterator ───────────────────────────────────────────────────────────

type rangeIterator struct {
	iter  *pebble.Iterator
	first bool
	done  bool
	key   int64
	val   []byte
	err   error
}

func (it *rangeIterator) Next() bool {
	if it.done {
		return false
	}
	var valid bool
	if it.first {
		it.first = false
		valid = it.iter.First()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		return false
	}
	it.key, it.err = index.DecodeKey(it.iter.Key())
	if it.err != nil {
		return false
	}
	// Pebble reuses the buffer on Next().
	v := it.iter.Value()
	it.val = make([]byte, len(v))
	copy(it.val, v)
	return true
}

func (it *rangeIterator) Key() int64    { return it.key }
func (it *rangeIterator) Value() []byte { return it.val }

func (it *rangeIterator) Error() error {
	if it.err != nil || it.iter == nil {
		return it.err
	}
	return it.iter.Error()
}

func (it *rangeIterator) Close() error {
	if it.iter == nil {
		return nil
	}
	return it.iter.Close()
}
