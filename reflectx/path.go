package reflectx

import (
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths over nested structs
//
// A path names a property of a property, separated by dots:
//
//	w := reflectx.Wrap(&order)
//	w.GetPath("Customer.Address.City")     → "London"
//	w.SetPath("Customer.Address.Zip", "EC1")
//	reflectx.Dot(order)                    → {"ID": 7, "Customer.Name": "Alice", ...}
//
// Intermediate properties may be structs or pointers to structs; a nil
// pointer ends the walk.
// ─────────────────────────────────────────────────────────────────────────────

// PathSeparator separates the segments of a property path.
const PathSeparator = "."

// GetPath returns the value at the dot-separated property path, or nil when
// any segment is unknown, unreadable or crosses a nil pointer.
func (w *Wrapper) GetPath(path string) any {
	head, rest, nested := strings.Cut(path, PathSeparator)
	if !nested {
		return w.Get(path)
	}
	next := w.Get(head)
	if next == nil {
		return nil
	}
	return Wrap(next).GetPath(rest)
}

// HasPath reports whether every segment of path names a property.
// Only types are consulted, so a path through a nil pointer still exists.
// An [Accessor] source is asked for each intermediate value instead.
func (w *Wrapper) HasPath(path string) bool {
	if w.custom != nil {
		head, rest, nested := strings.Cut(path, PathSeparator)
		if !nested {
			return w.Has(path)
		}
		next, ok := w.custom.GetProperty(head)
		if !ok {
			return false
		}
		return Wrap(next).HasPath(rest)
	}
	if w.accessor == nil {
		return false
	}
	t := w.accessor.typ
	for _, seg := range strings.Split(path, PathSeparator) {
		p, ok := PropertyOf(t, seg)
		if !ok {
			return false
		}
		t = p.Type()
	}
	return true
}

// SetPath writes value at the dot-separated property path and reports
// success. Every intermediate property must be readable. The final property
// must be reachable through an addressable struct: a wrapped pointer, or a
// non-nil pointer along the path. Intermediate nil pointers are not
// allocated.
func (w *Wrapper) SetPath(path string, value any) bool {
	head, rest, nested := strings.Cut(path, PathSeparator)
	if !nested {
		return w.Set(path, value)
	}
	if w.custom != nil {
		next, ok := w.custom.GetProperty(head)
		if !ok {
			return false
		}
		return Wrap(next).SetPath(rest, value)
	}
	if w.accessor == nil || !w.value.IsValid() {
		return false
	}
	p, ok := w.accessor.props[head]
	if !ok || !p.CanGet {
		return false
	}
	f, err := w.value.FieldByIndexErr(p.index)
	if err != nil {
		return false
	}
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return false
		}
		return Wrap(f.Interface()).SetPath(rest, value)
	}
	if f.CanAddr() && f.Addr().CanInterface() {
		return Wrap(f.Addr().Interface()).SetPath(rest, value)
	}
	if !f.CanInterface() {
		return false
	}
	// a copy still reaches the targets of its pointers
	return Wrap(f.Interface()).SetPath(rest, value)
}

// Dot flattens the readable properties of v into a single-level map keyed by
// dot-separated paths. Struct properties that have properties of their own
// are expanded; everything else, including nil pointers and structs such as
// time.Time, is stored as a leaf.
//
//	Dot(Order{ID: 7, Customer: Customer{Name: "Alice"}})
//	// → map[string]any{"ID": 7, "Customer.Name": "Alice"}
func Dot(v any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", Wrap(v), out, map[uintptr]bool{})
	return out
}

func dotFlatten(prefix string, w *Wrapper, out map[string]any, seen map[uintptr]bool) {
	for _, name := range w.Names() {
		val, ok := w.Lookup(name).Get()
		if !ok {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + PathSeparator + name
		}
		if expandable(val, seen) {
			dotFlatten(key, Wrap(val), out, seen)
			continue
		}
		out[key] = val
	}
}

// expandable reports whether val is a struct (or non-nil struct pointer, not
// yet visited) with properties of its own.
func expandable(val any, seen map[uintptr]bool) bool {
	if val == nil {
		return false
	}
	rv := reflect.ValueOf(val)
	var ptr uintptr
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() || seen[rv.Pointer()] {
			return false
		}
		ptr = rv.Pointer()
	}
	_, custom := val.(Accessor)
	t := Indirect(rv.Type())
	if !custom && (t.Kind() != reflect.Struct || len(accessorFor(t).order) == 0) {
		return false
	}
	if ptr != 0 {
		seen[ptr] = true
	}
	return true
}
