// Package reflectx provides cached, name-based access to the exported fields
// of Go structs, plus a few small reflection helpers.
//
// # Property access
//
// A property is an exported struct field, including fields promoted from
// embedded structs. [Wrap] pairs a value with its type's accessor table:
//
//	w := reflectx.Wrap(&order)
//	w.Get("Total")               // → 99.5
//	w.Set("Status", "shipped")   // → true
//	w.Get("Missing")             // → nil, never an error
//
// The table is built the first time a type is seen and kept for the lifetime
// of the process in a concurrent map; wrapping further values of the same
// type reuses it. Concurrent first wraps of one type may both build a table,
// but only one is stored and both are equivalent.
//
// Setting requires an addressable value, i.e. a pointer was wrapped. A value
// wrapped by copy is read-only and [Wrapper.Set] reports false.
//
// Field tags customise the table:
//
//	type Order struct {
//	    ID     int    `prop:",readonly"` // readable, never settable
//	    Secret string `prop:"-"`         // not a property
//	    Total  float64 `prop:"amount"`   // exposed as "amount"
//	}
//
// # Explicit accessors
//
// Types that implement [Accessor] are served through their own methods and
// never touch reflection or the cache. This is the preferred route for hot
// paths and for types whose properties are computed.
//
// # Strongly typed access
//
// [Property] values obtained from [PropertyOf] or [Wrapper.Properties]
// report failures as errors: [ErrNotSupported] when a known property lacks
// the capability, [ErrTypeMismatch] for a wrong instance or value type.
//
// # Logging
//
// Accessor-table builds are logged at debug level through the logger
// installed with [SetLogger]. The default logger discards everything.
package reflectx
