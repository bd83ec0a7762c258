package collections_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-extensions/collections"
)

type user struct {
	Name string
	Age  int
}

func users() []user {
	return []user{
		{Name: "Denis", Age: 41},
		{Name: "Andrei", Age: 7},
		{Name: "Dmitry", Age: 41},
		{Name: "Andrei", Age: 63},
	}
}

func TestSorterRules(t *testing.T) {
	items := users()
	s := collections.NewSorter[user]()

	assert.Equal(t, items, s.Sort(items), "no rules keeps input order")

	require.NoError(t, collections.AddAsc(s, func(u user) string { return u.Name }))
	got := s.Sort(items)
	assert.Equal(t, []user{items[1], items[3], items[0], items[2]}, got, "ties keep input order")

	require.NoError(t, collections.AddDesc(s, func(u user) int { return u.Age }))
	got = s.Sort(items)
	assert.Equal(t, []user{items[3], items[1], items[0], items[2]}, got)
	assert.Equal(t, 2, s.Len())
}

func TestSorterDoesNotMutateInput(t *testing.T) {
	items := users()
	s := collections.NewSorter[user]()
	require.NoError(t, collections.AddAsc(s, func(u user) int { return u.Age }))

	s.Sort(items)
	assert.Equal(t, users(), items)
}

func TestSorterAddFunc(t *testing.T) {
	s := collections.NewSorter[string]()
	require.NoError(t, s.AddFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, false))

	assert.Equal(t, []string{"c", "B", "a"}, s.Sort([]string{"a", "B", "c"}))
}

func TestSorterNilSelector(t *testing.T) {
	s := collections.NewSorter[user]()

	assert.ErrorIs(t, collections.AddAsc[user, int](s, nil), collections.ErrNilKeySelector)
	assert.ErrorIs(t, collections.AddDesc[user, string](s, nil), collections.ErrNilKeySelector)
	assert.ErrorIs(t, s.AddFunc(nil, true), collections.ErrNilKeySelector)
	assert.Zero(t, s.Len())
}

func TestSorterProperties(t *testing.T) {
	type pair struct{ primary, secondary int }
	toPairs := func(a, b []int) []pair {
		n := min(len(a), len(b))
		out := make([]pair, n)
		for i := 0; i < n; i++ {
			out[i] = pair{a[i], b[i]}
		}
		return out
	}

	properties := gopter.NewProperties(nil)

	properties.Property("one ascending rule yields non-decreasing keys", prop.ForAll(
		func(items []int) bool {
			s := collections.NewSorter[int]()
			_ = collections.AddAsc(s, func(n int) int { return n })
			got := s.Sort(items)
			for i := 1; i < len(got); i++ {
				if got[i-1] > got[i] {
					return false
				}
			}
			return len(got) == len(items)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("second rule only breaks ties", prop.ForAll(
		func(a, b []int) bool {
			items := toPairs(a, b)
			s := collections.NewSorter[pair]()
			_ = collections.AddAsc(s, func(p pair) int { return p.primary })
			_ = collections.AddDesc(s, func(p pair) int { return p.secondary })
			got := s.Sort(items)
			for i := 1; i < len(got); i++ {
				prev, cur := got[i-1], got[i]
				if prev.primary > cur.primary {
					return false
				}
				if prev.primary == cur.primary && prev.secondary < cur.secondary {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("equal keys keep input order", prop.ForAll(
		func(keys []int) bool {
			type entry struct{ key, index int }
			items := make([]entry, len(keys))
			for i, k := range keys {
				items[i] = entry{k, i}
			}
			s := collections.NewSorter[entry]()
			_ = collections.AddDesc(s, func(e entry) int { return e.key })
			got := s.Sort(items)
			for i := 1; i < len(got); i++ {
				if got[i-1].key == got[i].key && got[i-1].index > got[i].index {
					return false
				}
			}
			return len(got) == len(items)
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}
