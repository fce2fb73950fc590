// Package index defines the ordered-index contract shared by the 2-3 tree and
// the baseline stores it is benchmarked against.
package index

import "github.com/cockroachdb/errors"

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// Index is the common interface for all implementations.
type Index interface {
	Insert(key int64, value []byte) error
	Get(key int64) ([]byte, error)
	Delete(key int64) error
	// Range scans keys in [start, end], both inclusive, in ascending order.
	Range(start, end int64) (Iterator, error)
	Close() error
}

// Iterator allows scanning over a range of key-value pairs.
type Iterator interface {
	Next() bool
	Key() int64
	Value() []byte
	Error() error
	Close() error
}

// Collect drains it into parallel key and value slices and closes it.
func Collect(it Iterator) (keys []int64, values [][]byte, err error) {
	for it.Next() {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}
	err = it.Error()
	if cerr := it.Close(); err == nil {
		err = cerr
	}
	return keys, values, err
}
