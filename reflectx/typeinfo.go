package reflectx

import "reflect"

// Indirect strips every pointer level from t.
//
//	Indirect(reflect.TypeFor[**User]()) // User
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsNilable reports whether values of t can be nil.
func IsNilable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// Embeds reports whether struct type t is base, or embeds base (directly or
// through other embedded structs, by value or by pointer). Pointer levels of
// both arguments are ignored.
func Embeds(t, base reflect.Type) bool {
	t, base = Indirect(t), Indirect(base)
	if t == nil || base == nil {
		return false
	}
	return embeds(t, base, map[reflect.Type]bool{})
}

func embeds(t, base reflect.Type, seen map[reflect.Type]bool) bool {
	if t == base {
		return true
	}
	if t.Kind() != reflect.Struct || seen[t] {
		return false
	}
	seen[t] = true
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous && embeds(Indirect(f.Type), base, seen) {
			return true
		}
	}
	return false
}

// Implements reports whether t, or a pointer to t, implements interface I.
func Implements[I any](t reflect.Type) bool {
	iface := reflect.TypeFor[I]()
	if t == nil || iface.Kind() != reflect.Interface {
		return false
	}
	if t.Implements(iface) {
		return true
	}
	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface)
}
