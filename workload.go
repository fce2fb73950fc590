package main

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/nettoyeur/Basic/index"
)

type WorkloadType string

const (
	OLTP      WorkloadType = "OLTP (90/10)"
	OLAP      WorkloadType = "OLAP (10/90)"
	Reporting WorkloadType = "Reporting (Range)"
)

// rangeWidth is the key span of each Reporting scan.
const rangeWidth = 100

// ExecuteWorkload runs a mixed distribution of ops over keys in [0, ops).
// Misses are expected and ignored; any other failure stops the run.
func ExecuteWorkload(idx index.Index, wType WorkloadType, ops int, rng *rand.Rand) error {
	value := []byte("x")
	for i := 0; i < ops; i++ {
		choice := rng.IntN(100)
		key := int64(rng.IntN(ops))

		var err error
		switch wType {
		case OLTP:
			if choice < 90 {
				_, err = idx.Get(key)
			} else {
				err = idx.Insert(key, value)
			}
		case OLAP:
			if choice < 10 {
				_, err = idx.Get(key)
			} else {
				err = idx.Insert(key, value)
			}
		case Reporting:
			err = scan(idx, key, key+rangeWidth)
		default:
			return errors.Newf("workload: unknown type %q", wType)
		}
		if err != nil && !errors.Is(err, index.ErrNotFound) {
			return errors.Wrapf(err, "workload %s: op %d on key %d", wType, i, key)
		}
	}
	return nil
}

func scan(idx index.Index, start, end int64) error {
	it, err := idx.Range(start, end)
	if err != nil {
		return err
	}
	for it.Next() {
	}
	if err := it.Error(); err != nil {
		it.Close()
		return err
	}
	return it.Close()
}
