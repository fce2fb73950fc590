// Package bunt adapts an in-memory BuntDB database to the Index interface.
// Keys are stored as index.HexKey strings so BuntDB's key order matches
// numeric order.
package bunt

import (
	"github.com/cockroachdb/errors"
	"github.com/tidwall/buntdb"

	"github.com/nettoyeur/Basic/index"
)

var _ index.Index = (*Bunt)(nil)

type Bunt struct {
	db *buntdb.DB
}

// Open returns an empty store that lives only in memory.
func Open() (*Bunt, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, errors.Wrap(err, "bunt: open")
	}
	return &Bunt{db: db}, nil
}

func (b *Bunt) Insert(key int64, value []byte) error {
	if value == nil {
		return errors.Newf("bunt: nil value for key %d", key)
	}
	err := b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(index.HexKey(key), string(value), nil)
		return err
	})
	return errors.Wrap(err, "bunt: insert")
}

func (b *Bunt) Get(key int64) ([]byte, error) {
	var val string
	err := b.db.View(func(tx *buntdb.Tx) error {
		var err error
		val, err = tx.Get(index.HexKey(key))
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, errors.Wrapf(index.ErrNotFound, "key %d", key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "bunt: get")
	}
	return []byte(val), nil
}

func (b *Bunt) Delete(key int64) error {
	err := b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(index.HexKey(key))
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return errors.Wrapf(index.ErrNotFound, "key %d", key)
	}
	return errors.Wrap(err, "bunt: delete")
}

// Range materializes [start, end] inside a read transaction, since BuntDB
// iteration is callback driven and must not outlive the transaction.
func (b *Bunt) Range(start, end int64) (index.Iterator, error) {
	it := &sliceIterator{idx: -1}
	if start > end {
		return it, nil
	}
	err := b.db.View(func(tx *buntdb.Tx) error {
		var perr error
		iterate := func(k, v string) bool {
			var key int64
			key, perr = index.ParseHexKey(k)
			if perr != nil {
				return false
			}
			it.keys = append(it.keys, key)
			it.vals = append(it.vals, []byte(v))
			return true
		}
		if end == 1<<63-1 {
			if err := tx.AscendGreaterOrEqual("", index.HexKey(start), iterate); err != nil {
				return err
			}
		} else if err := tx.AscendRange("", index.HexKey(start), index.HexKey(end+1), iterate); err != nil {
			return err
		}
		return perr
	})
	if err != nil {
		return nil, errors.Wrap(err, "bunt: range")
	}
	return it, nil
}

func (b *Bunt) Close() error { return b.db.Close() }

type sliceIterator struct {
	keys []int64
	vals [][]byte
	idx  int
}

func (it *sliceIterator) Next() bool    { it.idx++; return it.idx < len(it.keys) }
func (it *sliceIterator) Key() int64    { return it.keys[it.idx] }
func (it *sliceIterator) Value() []byte { return it.vals[it.idx] }
func (it *sliceIterator) Error() error  { return nil }
func (it *sliceIterator) Close() error  { return nil }
