package str

import "fmt"

// Stringable pairs a value with the function that renders it, so any value
// can be handed to code expecting a [fmt.Stringer] (list items, log fields)
// without giving its type a String method.
//
//	item := str.NewStringable(customer, func(c Customer) string { return c.Name })
//	fmt.Println(item)         // customer name
//	selected := item.Value()  // the Customer itself
type Stringable[T any] struct {
	value  T
	render func(T) string
}

// NewStringable wraps v. A nil render formats v with [fmt.Sprint].
func NewStringable[T any](v T, render func(T) string) Stringable[T] {
	if render == nil {
		render = func(v T) string { return fmt.Sprint(v) }
	}
	return Stringable[T]{value: v, render: render}
}

// Value returns the wrapped value.
func (s Stringable[T]) Value() T { return s.value }

// String renders the wrapped value.
func (s Stringable[T]) String() string {
	if s.render == nil {
		return fmt.Sprint(s.value)
	}
	return s.render(s.value)
}
