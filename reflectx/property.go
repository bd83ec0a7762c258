package reflectx

import (
	"fmt"
	"math"
	"reflect"
)

// Property describes one accessible field of a struct type.
//
// A Property is immutable and safe for concurrent use.
type Property struct {
	// Name is the property name: the field name, or the name given by the
	// field's `prop` tag.
	Name string
	// Field is the underlying struct field.
	Field reflect.StructField
	// CanGet reports whether the property can be read.
	CanGet bool
	// CanSet reports whether the property can be written through an
	// addressable instance.
	CanSet bool

	owner reflect.Type
	index []int
}

// Type returns the property's value type.
func (p *Property) Type() reflect.Type { return p.Field.Type }

// Owner returns the struct type declaring (or promoting) the property.
func (p *Property) Owner() reflect.Type { return p.owner }

// Get returns the property value of instance, which must be a value of, or a
// pointer to, the owner struct type.
func (p *Property) Get(instance any) (any, error) {
	v, err := p.structValue(instance)
	if err != nil {
		return nil, err
	}
	return p.read(v)
}

// Set writes value into the property of instance, which must be a non-nil
// pointer to the owner struct type. A nil value stores the zero value.
func (p *Property) Set(instance any, value any) error {
	if !p.CanSet {
		return fmt.Errorf("%w: set %s", ErrNotSupported, p.Name)
	}
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("%w: set %s on %T", ErrNotAddressable, p.Name, instance)
	}
	v, err := p.structValue(instance)
	if err != nil {
		return err
	}
	return p.write(v, value)
}

// GetAs returns the property value of instance as a V.
// A nil property value yields the zero V.
func GetAs[V any](p *Property, instance any) (V, error) {
	var zero V
	got, err := p.Get(instance)
	if err != nil || got == nil {
		return zero, err
	}
	v, ok := got.(V)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, not %s", ErrTypeMismatch, p.Name, got, reflect.TypeFor[V]())
	}
	return v, nil
}

// structValue dereferences instance down to a value of the owner type.
func (p *Property) structValue(instance any) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilInstance, p.Name)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilInstance, p.Name)
	}
	if v.Type() != p.owner {
		return reflect.Value{}, fmt.Errorf("%w: %s belongs to %s, got %s", ErrTypeMismatch, p.Name, p.owner, v.Type())
	}
	return v, nil
}

// read returns the field value from v, a value of the owner type.
func (p *Property) read(v reflect.Value) (any, error) {
	if !p.CanGet {
		return nil, fmt.Errorf("%w: get %s", ErrNotSupported, p.Name)
	}
	f, err := v.FieldByIndexErr(p.index)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", p.Name, err)
	}
	if !f.CanInterface() {
		return nil, fmt.Errorf("%w: get %s", ErrNotSupported, p.Name)
	}
	return f.Interface(), nil
}

// write assigns value to the field of v, an addressable value of the owner
// type.
func (p *Property) write(v reflect.Value, value any) error {
	if !p.CanSet {
		return fmt.Errorf("%w: set %s", ErrNotSupported, p.Name)
	}
	if !v.CanAddr() {
		return fmt.Errorf("%w: set %s", ErrNotAddressable, p.Name)
	}
	f, err := v.FieldByIndexErr(p.index)
	if err != nil {
		return fmt.Errorf("set %s: %w", p.Name, err)
	}
	if !f.CanSet() {
		return fmt.Errorf("%w: set %s", ErrNotSupported, p.Name)
	}
	if value == nil {
		f.SetZero()
		return nil
	}
	val := reflect.ValueOf(value)
	switch {
	case val.Type().AssignableTo(f.Type()):
		f.Set(val)
	case convertible(val, f.Type()) && lossless(val, f.Type()):
		f.Set(val.Convert(f.Type()))
	default:
		return fmt.Errorf("%w: cannot assign %s to %s (%s)", ErrTypeMismatch, val.Type(), p.Name, f.Type())
	}
	return nil
}

// convertible permits conversions between types of the same kind (named
// types) and between numeric kinds. It rejects conversions such as
// int → string that change meaning.
func convertible(val reflect.Value, to reflect.Type) bool {
	if !val.Type().ConvertibleTo(to) {
		return false
	}
	if val.Kind() == to.Kind() {
		return true
	}
	return isNumeric(val.Kind()) && isNumeric(to.Kind())
}

// lossless reports whether the numeric val keeps its exact value as a to.
// Non-numeric values are always lossless.
func lossless(val reflect.Value, to reflect.Type) bool {
	const two63, two64 = 1 << 63, 1 << 64
	z := reflect.Zero(to)
	switch {
	case val.CanInt():
		x := val.Int()
		switch {
		case z.CanInt():
			return !z.OverflowInt(x)
		case z.CanUint():
			return x >= 0 && !z.OverflowUint(uint64(x))
		case z.CanFloat():
			f := val.Convert(to).Float()
			return f >= -two63 && f < two63 && int64(f) == x
		}
	case val.CanUint():
		x := val.Uint()
		switch {
		case z.CanInt():
			return x <= math.MaxInt64 && !z.OverflowInt(int64(x))
		case z.CanUint():
			return !z.OverflowUint(x)
		case z.CanFloat():
			f := val.Convert(to).Float()
			return f < two64 && uint64(f) == x
		}
	case val.CanFloat():
		x := val.Float()
		switch {
		case z.CanFloat():
			return !z.OverflowFloat(x)
		case z.CanInt():
			return x == math.Trunc(x) && x >= -two63 && x < two63 && !z.OverflowInt(int64(x))
		case z.CanUint():
			return x == math.Trunc(x) && x >= 0 && x < two64 && !z.OverflowUint(uint64(x))
		}
	}
	return true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
