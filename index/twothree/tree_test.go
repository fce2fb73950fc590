package twothree

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTree(t *testing.T) {
	tree := New[int, string]()

	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.Keys())
	assert.Empty(t, tree.Values())
	assert.Empty(t, tree.ToList())
	assert.NoError(t, tree.Validate())

	_, ok := tree.Find(1)
	assert.False(t, ok)
}

func TestPutScenario(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		require.NoError(t, tree.Put(k, "v"+strconv.Itoa(k)))
	}

	assert.Equal(t, 8, tree.Size())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, []int{5, 6, 7, 10, 12, 17, 20, 30}, tree.Keys())

	v, ok := tree.Find(6)
	require.True(t, ok)
	assert.Equal(t, "v6", v)

	_, ok = tree.Find(11)
	assert.False(t, ok)
}

func TestRootGrowth(t *testing.T) {
	tree := New[int, int]()

	require.NoError(t, tree.Put(1, 1))
	require.NoError(t, tree.Put(2, 2))
	assert.Equal(t, 0, tree.Height())

	require.NoError(t, tree.Put(3, 3))
	assert.Equal(t, 1, tree.Height())
	require.NotNil(t, tree.root)
	assert.Equal(t, 2, tree.root.entries[0].key)
	require.Len(t, tree.root.children, 2)
	assert.Equal(t, 1, tree.root.children[0].entries[0].key)
	assert.Equal(t, 3, tree.root.children[1].entries[0].key)

	// Descending inserts make the promoted key smaller than the old root's.
	desc := New[int, int]()
	for _, k := range []int{30, 20, 10} {
		require.NoError(t, desc.Put(k, k))
	}
	assert.Equal(t, 20, desc.root.entries[0].key)
	assert.Equal(t, []int{10, 20, 30}, desc.Keys())
}

func TestPutOverwrite(t *testing.T) {
	tree := New[string, int]()
	require.NoError(t, tree.Put("a", 1))
	require.NoError(t, tree.Put("b", 2))
	require.NoError(t, tree.Put("c", 3))

	// "b" lives in the root after the first split.
	require.NoError(t, tree.Put("b", 20))
	require.NoError(t, tree.Put("a", 10))

	assert.Equal(t, 3, tree.Size())
	v, ok := tree.Find("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, []int{10, 20, 3}, tree.Values())
}

func TestPutNilValue(t *testing.T) {
	ptrs := New[int, *string]()
	s := "x"
	require.NoError(t, ptrs.Put(1, &s))

	err := ptrs.Put(5, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 1, ptrs.Size())

	bytes := New[int, []byte]()
	assert.ErrorIs(t, bytes.Put(1, nil), ErrInvalidArgument)
	assert.NoError(t, bytes.Put(1, []byte{}))

	anys := New[int, any]()
	assert.ErrorIs(t, anys.Put(1, nil), ErrInvalidArgument)
	assert.Equal(t, 0, anys.Size())

	// A rejected value is a usage error, not a fault: the tree keeps working.
	assert.NoError(t, anys.Put(2, 0))
}

func TestDeleteUnimplemented(t *testing.T) {
	tree := New[int, int]()
	for i := range 20 {
		require.NoError(t, tree.Put(i, i*i))
	}
	before := tree.ToList()

	err := tree.Delete(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnimplemented))

	assert.ErrorIs(t, tree.Delete(1000), ErrUnimplemented)
	assert.Equal(t, before, tree.ToList())
}

func TestNewFuncOrdering(t *testing.T) {
	desc := NewFunc[int, string](func(a, b int) int { return b - a })
	for _, k := range []int{3, 9, 1, 7, 5} {
		require.NoError(t, desc.Put(k, strconv.Itoa(k)))
	}
	assert.Equal(t, []int{9, 7, 5, 3, 1}, desc.Keys())
	assert.NoError(t, desc.Validate())
}

func TestWithoutInvariantChecks(t *testing.T) {
	tree := New[int, int](WithInvariantChecks(false))
	for i := range 1000 {
		require.NoError(t, tree.Put(i, i))
	}
	assert.NoError(t, tree.Validate())
	assert.Equal(t, 1000, tree.Size())
}

func TestRandomPutsAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tree := New[int, int]()
	model := make(map[int]int)

	for op := range 3000 {
		k := rng.IntN(800) - 400
		before := tree.Height()

		require.NoError(t, tree.Put(k, op))
		model[k] = op

		h := tree.Height()
		require.LessOrEqual(t, h-before, 1, "height grew by more than one level")
		require.GreaterOrEqual(t, h, before, "height shrank")
		require.Equal(t, len(model), tree.Size())
	}

	for k, want := range model {
		got, ok := tree.Find(k)
		require.True(t, ok, "key %d missing", k)
		require.Equal(t, want, got)
	}
	for k := -450; k < -400; k++ {
		_, ok := tree.Find(k)
		require.False(t, ok)
	}

	keys := tree.Keys()
	want := make([]int, 0, len(model))
	for k := range model {
		want = append(want, k)
	}
	slices.Sort(want)
	assert.Equal(t, want, keys)
}

func TestHeightGrowsOnlyOnRootSplit(t *testing.T) {
	tree := New[int, int]()
	for i := range 500 {
		root := tree.root
		before := tree.Height()
		require.NoError(t, tree.Put(i, i))
		if tree.Height() > before {
			assert.NotSame(t, root, tree.root, "height grew without a new root")
		}
	}
	// 500 ascending keys fill a 2-3 tree between log3 and log2 levels.
	assert.GreaterOrEqual(t, tree.Height(), 5)
	assert.LessOrEqual(t, tree.Height(), 8)
}
