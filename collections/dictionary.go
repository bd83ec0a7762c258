package collections

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dictionary helpers
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
// Returns nil when m is nil.
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}
	return lo.Keys(m)
}

// Values returns the values of m in unspecified order.
// Returns nil when m is nil.
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}
	return lo.Values(m)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Append copies every pair of other whose key is not already present in dst
// and returns dst. Existing keys are never overwritten, so dst has priority.
//
// The operation mutates dst. When dst is nil and other has entries a new map
// is allocated and returned.
//
//	Append(map[string]int{"a": 1}, map[string]int{"a": 9, "b": 2})
//	// → map[a:1 b:2]
func Append[K comparable, V any](dst, other map[K]V) map[K]V {
	for k, v := range other {
		if _, exists := dst[k]; exists {
			continue
		}
		if dst == nil {
			dst = make(map[K]V, len(other))
		}
		dst[k] = v
	}
	return dst
}

// GroupBy groups items by the key extracted by fn. Items keep their relative
// order inside each group.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	return lo.GroupBy(items, fn)
}
