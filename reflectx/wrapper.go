package reflectx

import (
	"reflect"

	"github.com/samber/mo"
)

// Accessor is implemented by types that expose their properties explicitly.
// [Wrap] serves such values through these methods instead of reflection.
type Accessor interface {
	// PropertyNames lists the available property names.
	PropertyNames() []string
	// GetProperty returns the named property and whether it exists and is
	// readable.
	GetProperty(name string) (any, bool)
	// SetProperty writes the named property, reporting success. It must be a
	// no-op returning false for unknown or read-only names.
	SetProperty(name string, value any) bool
}

// Wrapper gives name-based get/set access to the properties of one value.
type Wrapper struct {
	source any
	custom Accessor

	// value is the dereferenced struct; invalid when source is nil, a nil
	// pointer, or not a struct.
	value    reflect.Value
	accessor *typeAccessor
}

// Wrap returns a Wrapper for v. Values implementing [Accessor] are served
// directly; every other value uses the cached accessor table of its type.
// Wrap never fails: a nil or non-struct v yields a wrapper with no
// readable properties.
func Wrap(v any) *Wrapper {
	w := &Wrapper{source: v}
	if a, ok := v.(Accessor); ok {
		w.custom = a
		return w
	}
	if v == nil {
		return w
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	w.accessor = accessorFor(Indirect(rv.Type()))
	if rv.Kind() == reflect.Struct {
		w.value = rv
	}
	return w
}

// Source returns the wrapped value.
func (w *Wrapper) Source() any { return w.source }

// Properties returns the property descriptors of the wrapped type, or nil
// for [Accessor] values and nil sources.
func (w *Wrapper) Properties() []*Property {
	if w.accessor == nil {
		return nil
	}
	out := make([]*Property, len(w.accessor.order))
	copy(out, w.accessor.order)
	return out
}

// Names returns the property names of the wrapped value.
func (w *Wrapper) Names() []string {
	if w.custom != nil {
		return w.custom.PropertyNames()
	}
	if w.accessor == nil {
		return nil
	}
	names := make([]string, len(w.accessor.order))
	for i, p := range w.accessor.order {
		names[i] = p.Name
	}
	return names
}

// Has reports whether the wrapped value has a property called name.
func (w *Wrapper) Has(name string) bool {
	if w.custom != nil {
		for _, n := range w.custom.PropertyNames() {
			if n == name {
				return true
			}
		}
		return false
	}
	if w.accessor == nil {
		return false
	}
	_, ok := w.accessor.props[name]
	return ok
}

// Lookup returns the named property value, or None when the property does
// not exist or cannot be read.
func (w *Wrapper) Lookup(name string) mo.Option[any] {
	if w.custom != nil {
		if v, ok := w.custom.GetProperty(name); ok {
			return mo.Some(v)
		}
		return mo.None[any]()
	}
	if w.accessor == nil || !w.value.IsValid() {
		return mo.None[any]()
	}
	p, ok := w.accessor.props[name]
	if !ok {
		return mo.None[any]()
	}
	v, err := p.read(w.value)
	if err != nil {
		return mo.None[any]()
	}
	return mo.Some(v)
}

// Get returns the named property value, or nil when the property does not
// exist or cannot be read.
func (w *Wrapper) Get(name string) any {
	return w.Lookup(name).OrElse(nil)
}

// Set writes value into the named property and reports success. It is a
// no-op returning false when the property does not exist, is read-only, the
// wrapped value is not addressable, or value has an incompatible type.
func (w *Wrapper) Set(name string, value any) bool {
	if w.custom != nil {
		return w.custom.SetProperty(name, value)
	}
	if w.accessor == nil || !w.value.IsValid() {
		return false
	}
	p, ok := w.accessor.props[name]
	if !ok || !p.CanSet {
		return false
	}
	return p.write(w.value, value) == nil
}

// GetOrDefault returns the named property as a V, or def when the property
// does not exist, cannot be read, or is not a V. A readable property holding
// nil yields the zero V.
func GetOrDefault[V any](w *Wrapper, name string, def V) V {
	got, ok := w.Lookup(name).Get()
	if !ok {
		return def
	}
	if got == nil {
		var zero V
		return zero
	}
	v, ok := got.(V)
	if !ok {
		return def
	}
	return v
}
