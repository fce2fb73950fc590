package twothree

import (
	"cmp"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Pair is one key/value entry as produced by ToList.
type Pair[K, V any] struct {
	Key   K
	Value V
}

type options struct {
	checkInvariants bool
}

// Option configures a Tree.
type Option func(*options)

// WithInvariantChecks toggles the structural self-check run after every Put.
// It is on by default; turning it off drops Put from O(n) back to O(log n).
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) { o.checkInvariants = enabled }
}

// Tree is an ordered map backed by a 2-3 tree. The zero value is not usable;
// construct one with New or NewFunc.
type Tree[K, V any] struct {
	root  *node[K, V]
	cmp   func(a, b K) int
	opts  options
	fault error
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare, which must define a total
// order and return a negative, zero or positive result like cmp.Compare.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	o := options{checkInvariants: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{cmp: compare, opts: o}
}

// Put associates value with key, replacing any previous value.
//
// A nil value is rejected with ErrInvalidArgument. If the post-insert self
// check fails, Put returns an error matching ErrInternalConsistency and the
// tree rejects every later Put with the same error.
func (t *Tree[K, V]) Put(key K, value V) error {
	if t.fault != nil {
		return t.fault
	}
	if isNil(value) {
		return errors.Wrapf(ErrInvalidArgument, "nil value for key %v", key)
	}

	if t.root == nil {
		t.root = newLeaf(key, value)
		return t.check()
	}

	if p := t.root.insert(t.cmp, key, value); p != nil {
		t.root = &node[K, V]{
			entries:  []entry[K, V]{p.promoted},
			children: []*node[K, V]{t.root, p.sibling},
		}
	}
	return t.check()
}

func (t *Tree[K, V]) check() error {
	if !t.opts.checkInvariants {
		return nil
	}
	if err := t.Validate(); err != nil {
		t.fault = err
		return err
	}
	return nil
}

// Find returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	e, ok := t.root.find(t.cmp, key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Delete is not supported and always returns ErrUnimplemented.
func (t *Tree[K, V]) Delete(key K) error {
	return errors.Wrapf(ErrUnimplemented, "delete key %v", key)
}

// Height is the number of edges from the root to any leaf, 0 when empty.
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height()
}

// Size is the number of distinct keys in the tree.
func (t *Tree[K, V]) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.size()
}

// ToList returns every entry in ascending key order.
func (t *Tree[K, V]) ToList() []Pair[K, V] {
	var out []Pair[K, V]
	for k, v := range t.All() {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	var out []K
	for k := range t.All() {
		out = append(out, k)
	}
	return out
}

// Values returns every value, ordered by its key.
func (t *Tree[K, V]) Values() []V {
	var out []V
	for _, v := range t.All() {
		out = append(out, v)
	}
	return out
}

// Validate checks the structural invariants of the whole tree and returns an
// error matching ErrInternalConsistency on the first violation found.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		return nil
	}
	_, err := t.root.validate(t.cmp, nil, nil, 0)
	return err
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
