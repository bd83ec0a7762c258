package collections

import (
	"cmp"
	"slices"
)

// sortRule compares two items by one key in one direction.
type sortRule[T any] struct {
	compare func(a, b T) int
	asc     bool
}

// Sorter orders slices of T by a list of rules applied in the order they were
// added. The first rule is the primary sort key; every later rule only breaks
// ties left by all earlier rules. Sorting is stable: items equal under every
// rule keep their relative input order.
//
// A Sorter is not safe for concurrent mutation. Once fully configured it may
// be used for concurrent Sort calls.
type Sorter[T any] struct {
	rules []sortRule[T]
}

// NewSorter creates a Sorter with no rules.
func NewSorter[T any]() *Sorter[T] {
	return &Sorter[T]{}
}

// AddAsc adds an ascending rule ordering items by the key extracted by key.
// Returns [ErrNilKeySelector] if key is nil.
func AddAsc[T any, K cmp.Ordered](s *Sorter[T], key func(T) K) error {
	return addKey(s, key, true)
}

// AddDesc adds a descending rule ordering items by the key extracted by key.
// Returns [ErrNilKeySelector] if key is nil.
func AddDesc[T any, K cmp.Ordered](s *Sorter[T], key func(T) K) error {
	return addKey(s, key, false)
}

func addKey[T any, K cmp.Ordered](s *Sorter[T], key func(T) K, asc bool) error {
	if key == nil {
		return ErrNilKeySelector
	}
	return s.AddFunc(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, asc)
}

// AddFunc adds a rule using an arbitrary three-way comparator that returns a
// negative number when a < b, zero when equal and a positive number when
// a > b. When asc is false the comparator's order is reversed.
func (s *Sorter[T]) AddFunc(compare func(a, b T) int, asc bool) error {
	if compare == nil {
		return ErrNilKeySelector
	}
	s.rules = append(s.rules, sortRule[T]{compare: compare, asc: asc})
	return nil
}

// Len returns the number of rules added so far.
func (s *Sorter[T]) Len() int { return len(s.rules) }

// Sort returns a sorted copy of items. With no rules the copy keeps the
// original order.
func (s *Sorter[T]) Sort(items []T) []T {
	out := slices.Clone(items)
	if len(s.rules) == 0 {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		for _, rule := range s.rules {
			c := rule.compare(a, b)
			if c == 0 {
				continue
			}
			if !rule.asc {
				return -c
			}
			return c
		}
		return 0
	})
	return out
}
