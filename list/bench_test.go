package list_test

import (
	"testing"

	"github.com/katalvlaran/dskit/list"
)

// BenchmarkPushBack measures O(1) appends through the tail shortcut.
func BenchmarkPushBack(b *testing.B) {
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
	}
}

// BenchmarkPushFront measures O(1) prepends.
func BenchmarkPushFront(b *testing.B) {
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
}

// BenchmarkAt_Middle measures the O(i) positional walk on a fixed list.
func BenchmarkAt_Middle(b *testing.B) {
	const n = 10000
	l := list.New[int]()
	for i := 0; i < n; i++ {
		l.PushBack(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.At(n / 2)
	}
}

// BenchmarkReverse measures full-chain relinking.
func BenchmarkReverse(b *testing.B) {
	const n = 10000
	l := list.New[int]()
	for i := 0; i < n; i++ {
		l.PushBack(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reverse()
	}
}
