package main

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nettoyeur/Basic/index"
	"github.com/nettoyeur/Basic/index/bunt"
	"github.com/nettoyeur/Basic/index/gbtree"
	"github.com/nettoyeur/Basic/index/listindex"
	"github.com/nettoyeur/Basic/index/lsm"
	"github.com/nettoyeur/Basic/index/twothree"
)

func candidates(t *testing.T) map[string]index.Index {
	t.Helper()
	l, err := lsm.Open("", zap.NewNop().Sugar())
	require.NoError(t, err)
	b, err := bunt.Open()
	require.NoError(t, err)

	idxs := map[string]index.Index{
		StructTwoThree: twothree.NewIndex(twothree.WithInvariantChecks(true)),
		StructGBTree:   gbtree.New(3),
		StructLSM:      l,
		StructBunt:     b,
	}
	t.Cleanup(func() {
		for _, idx := range idxs {
			idx.Close()
		}
	})
	return idxs
}

func TestIndexesAgreeWithReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	ref := listindex.NewListIndex()
	idxs := candidates(t)

	for op := range 2000 {
		k := int64(rng.IntN(1500) - 750)
		v := []byte(strconv.Itoa(op))
		require.NoError(t, ref.Insert(k, v))
		for name, idx := range idxs {
			require.NoError(t, idx.Insert(k, v), name)
		}
	}

	for name, idx := range idxs {
		for k := int64(-760); k <= 760; k++ {
			want, werr := ref.Get(k)
			got, gerr := idx.Get(k)
			if werr != nil {
				require.ErrorIs(t, gerr, index.ErrNotFound, "%s key %d", name, k)
				continue
			}
			require.NoError(t, gerr, "%s key %d", name, k)
			require.Equal(t, want, got, "%s key %d", name, k)
		}

		for _, r := range [][2]int64{{-800, 800}, {-10, 10}, {3, 3}, {100, 90}, {0, math.MaxInt64}} {
			it, err := ref.Range(r[0], r[1])
			require.NoError(t, err)
			wantKeys, wantVals, err := index.Collect(it)
			require.NoError(t, err)

			it, err = idx.Range(r[0], r[1])
			require.NoError(t, err)
			gotKeys, gotVals, err := index.Collect(it)
			require.NoError(t, err)

			assert.Equal(t, wantKeys, gotKeys, "%s range %v", name, r)
			assert.Equal(t, wantVals, gotVals, "%s range %v", name, r)
		}
	}
}

func TestExecuteWorkload(t *testing.T) {
	for name, idx := range candidates(t) {
		for k := int64(0); k < 500; k++ {
			require.NoError(t, idx.Insert(k, []byte("v")))
		}
		rng := rand.New(rand.NewPCG(1, 1))
		for _, wt := range []WorkloadType{OLTP, OLAP, Reporting} {
			assert.NoError(t, ExecuteWorkload(idx, wt, 250, rng), "%s %s", name, wt)
		}
	}
}

func TestExecuteWorkloadUnknownType(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Error(t, ExecuteWorkload(twothree.NewIndex(), "bogus", 1, rng))
}
