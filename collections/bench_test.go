package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-extensions/collections"
)

// makeInts creates a descending slice of size n for benchmarks.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = n - i
	}
	return items
}

func BenchmarkSection(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Section(items, 64)
	}
}

func BenchmarkPage(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Page(items, 42, 100)
	}
}

func BenchmarkSorterTwoRules(b *testing.B) {
	items := makeInts(10_000)
	s := collections.NewSorter[int]()
	_ = collections.AddAsc(s, func(n int) int { return n % 10 })
	_ = collections.AddDesc(s, func(n int) int { return n })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Sort(items)
	}
}
