package collections

import (
	"slices"

	"github.com/samber/lo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Testing
// ─────────────────────────────────────────────────────────────────────────────

// NotEmpty reports whether items has at least one element, optionally
// matching fns[0].
func NotEmpty[T any](items []T, fns ...func(T) bool) bool {
	if len(fns) > 0 && fns[0] != nil {
		return lo.SomeBy(items, fns[0])
	}
	return len(items) > 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Section splits items into consecutive sections of length elements.
// The last section may contain fewer elements. Each section is a copy, so
// modifying it does not affect items.
//
// Returns an empty result when items is empty or length <= 0.
func Section[T any](items []T, length int) [][]T {
	if length <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := lo.Chunk(items, length)
	out := make([][]T, len(chunks))
	for i, chunk := range chunks {
		out[i] = slices.Clone(chunk)
	}
	return out
}

// Page returns the elements of page index when items is split into pages of
// size elements: items[index*size : index*size+size], clipped to bounds.
//
// A negative index, a non-positive size, or a page past the end yields an
// empty slice.
func Page[T any](items []T, index, size int) []T {
	if index < 0 || size <= 0 || len(items) == 0 {
		return []T{}
	}
	// index*size may overflow; compare by division first.
	if index > (len(items)-1)/size {
		return []T{}
	}
	start := index * size
	end := min(start+size, len(items))
	return slices.Clone(items[start:end])
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// IgnoreNil returns the values behind the non-nil pointers in items.
//
//	a, b := 1, 2
//	IgnoreNil([]*int{&a, nil, &b}) // → [1 2]
func IgnoreNil[T any](items []*T) []T {
	return lo.FilterMap(items, func(p *T, _ int) (T, bool) {
		if p == nil {
			var zero T
			return zero, false
		}
		return *p, true
	})
}

// RemoveWhere returns the items that do not satisfy fn.
// A nil fn yields an empty result, as does a nil items.
func RemoveWhere[T any](items []T, fn func(T) bool) []T {
	if items == nil || fn == nil {
		return []T{}
	}
	return lo.Reject(items, func(item T, _ int) bool { return fn(item) })
}

// OrEmpty returns items, or an empty non-nil slice when items is nil.
func OrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
