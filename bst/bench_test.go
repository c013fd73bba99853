package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dskit/bst"
)

// randomTree builds a tree of n distinct-ish random values.
func randomTree(n int, seed int64) *bst.Tree[int] {
	rng := rand.New(rand.NewSource(seed))
	t := bst.New[int]()
	for i := 0; i < n; i++ {
		t.Insert(rng.Int())
	}

	return t
}

// BenchmarkInsert_Random measures insertion into a randomly shaped tree
// (expected O(log n) height).
func BenchmarkInsert_Random(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	t := bst.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Insert(rng.Int())
	}
}

// BenchmarkContains_Random probes membership on a 100k-node tree.
func BenchmarkContains_Random(b *testing.B) {
	const n = 100_000
	t := randomTree(n, 2)
	rng := rand.New(rand.NewSource(3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Contains(rng.Int())
	}
}

// BenchmarkInOrder materializes the sorted view of a 100k-node tree.
func BenchmarkInOrder(b *testing.B) {
	const n = 100_000
	t := randomTree(n, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.InOrder()
	}
}

// BenchmarkInsert_Degenerate measures the worst case: ascending input
// producing a right chain, where each insert walks the full height.
func BenchmarkInsert_Degenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := bst.New[int]()
		b.StartTimer()
		for v := 0; v < 2000; v++ {
			t.Insert(v)
		}
	}
}
