package twothree

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkPutSequential(b *testing.B) {
	t := New[int, int](WithInvariantChecks(false))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Put(i, i)
	}
}

func BenchmarkPutRandom(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	t := New[int, int](WithInvariantChecks(false))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Put(rng.Int(), i)
	}
}

func BenchmarkFind(b *testing.B) {
	const n = 1 << 16
	t := New[int, int](WithInvariantChecks(false))
	for i := 0; i < n; i++ {
		_ = t.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Find(i % n)
	}
}

func BenchmarkIterate(b *testing.B) {
	t := New[int, int](WithInvariantChecks(false))
	for i := 0; i < 1<<14; i++ {
		_ = t.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range t.All() {
		}
	}
}
