// Package collections provides generic helpers for Go maps and slices:
// dictionary key/value extraction and non-overwriting merge, sectioning and
// paging of sequences, nil filtering, and a multi-key stable [Sorter].
//
// # Dictionary helpers
//
//	keys   := collections.SortedKeys(m)
//	merged := collections.Append(defaults, overrides) // keys already in defaults win
//
// # Sequence helpers
//
// All helpers operate on plain []T values and never modify their input:
//
//	sections := collections.Section([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//	page     := collections.Page(items, 3, 10)               // → items[30:40], clipped
//	kept     := collections.RemoveWhere(items, isExpired)
//
// # Sorting
//
// A [Sorter] accumulates ordering rules and applies them in the order they
// were added. The first rule is the primary key; later rules only break ties:
//
//	s := collections.NewSorter[User]()
//	_ = collections.AddAsc(s, func(u User) string { return u.Name })
//	_ = collections.AddDesc(s, func(u User) int { return u.Age })
//	sorted := s.Sort(users)
//
// Nil and empty inputs are accepted everywhere and produce empty results
// rather than errors; the only error this package reports is a nil key
// selector passed to a [Sorter].
package collections
