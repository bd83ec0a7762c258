package reflectx

import "errors"

// Sentinel errors returned by strongly typed property access.
//
// Use [errors.Is] for comparisons:
//
//	if _, err := prop.Get(v); errors.Is(err, reflectx.ErrNotSupported) {
//	    // property is write-only
//	}
var (
	// ErrNotSupported is returned when a property is read without a getter
	// or written without a setter.
	ErrNotSupported = errors.New("reflectx: operation not supported by property")

	// ErrTypeMismatch is returned when the instance is not of the property's
	// owner type, or the value cannot be assigned to the property.
	ErrTypeMismatch = errors.New("reflectx: type mismatch")

	// ErrNotAddressable is returned by [Property.Set] when the instance is
	// not a non-nil pointer to the owner struct.
	ErrNotAddressable = errors.New("reflectx: instance is not addressable")

	// ErrNilInstance is returned when the instance is nil or a nil pointer.
	ErrNilInstance = errors.New("reflectx: nil instance")
)
