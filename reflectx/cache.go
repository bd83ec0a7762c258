package reflectx

import (
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// tagName is the struct tag consulted when building accessor tables.
const tagName = "prop"

// typeAccessor is the cached accessor table of one struct type.
type typeAccessor struct {
	typ   reflect.Type
	props map[string]*Property
	// order lists properties in field declaration order.
	order []*Property
}

// accessorCache maps reflect.Type → *typeAccessor. Entries are never evicted.
var accessorCache sync.Map

// accessorFor returns the accessor table for struct type t, building and
// storing it on first use. Concurrent first calls may build twice; only one
// table is stored and returned to every caller.
func accessorFor(t reflect.Type) *typeAccessor {
	if cached, ok := accessorCache.Load(t); ok {
		return cached.(*typeAccessor)
	}
	built := buildAccessor(t)
	actual, loaded := accessorCache.LoadOrStore(t, built)
	if !loaded {
		logger().Debug("accessor table built",
			zap.Stringer("type", t),
			zap.Int("properties", len(built.order)),
		)
	}
	return actual.(*typeAccessor)
}

func buildAccessor(t reflect.Type) *typeAccessor {
	acc := &typeAccessor{typ: t, props: make(map[string]*Property)}
	if t.Kind() != reflect.Struct {
		return acc
	}
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		name, opts, skip := parseTag(f)
		if skip {
			continue
		}
		if _, dup := acc.props[name]; dup {
			continue
		}
		p := &Property{
			Name:   name,
			Field:  f,
			CanGet: !opts.writeOnly,
			CanSet: !opts.readOnly,
			owner:  t,
			index:  f.Index,
		}
		acc.props[name] = p
		acc.order = append(acc.order, p)
	}
	return acc
}

type tagOptions struct {
	readOnly  bool
	writeOnly bool
}

// parseTag reads `prop:"name,readonly"`. A tag of "-" skips the field.
func parseTag(f reflect.StructField) (name string, opts tagOptions, skip bool) {
	tag, ok := f.Tag.Lookup(tagName)
	if !ok {
		return f.Name, opts, false
	}
	if tag == "-" {
		return "", opts, true
	}
	parts := strings.Split(tag, ",")
	name = strings.TrimSpace(parts[0])
	if name == "" {
		name = f.Name
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "readonly":
			opts.readOnly = true
		case "writeonly":
			opts.writeOnly = true
		}
	}
	return name, opts, false
}

// PropertiesOf returns the properties of t (or of the struct t points to) in
// field declaration order. Non-struct types have no properties.
func PropertiesOf(t reflect.Type) []*Property {
	if t == nil {
		return nil
	}
	acc := accessorFor(Indirect(t))
	out := make([]*Property, len(acc.order))
	copy(out, acc.order)
	return out
}

// PropertiesFor is [PropertiesOf] for the type parameter T.
func PropertiesFor[T any]() []*Property {
	return PropertiesOf(reflect.TypeFor[T]())
}

// PropertyOf returns the named property of t (or of the struct t points to).
func PropertyOf(t reflect.Type, name string) (*Property, bool) {
	if t == nil {
		return nil, false
	}
	p, ok := accessorFor(Indirect(t)).props[name]
	return p, ok
}
