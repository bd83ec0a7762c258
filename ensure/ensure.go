package ensure

import (
	"reflect"
	"strings"
)

// Default messages used when a guard is called without one.
const (
	MsgNotNil   = "Value must be not nil."
	MsgEqual    = "Values must be equal."
	MsgNotEqual = "Values must not be equal."
	MsgNotEmpty = "String cannot be empty."
	MsgNotBlank = "String cannot be empty or white space."
)

// ─────────────────────────────────────────────────────────────────────────────
// Conditions
// ─────────────────────────────────────────────────────────────────────────────

// That returns a [Failure] error when condition is false.
func That(condition bool, msg ...string) error {
	return ThatKind(Failure, condition, msg...)
}

// ThatKind returns an error of the given kind when condition is false.
func ThatKind(kind Kind, condition bool, msg ...string) error {
	if condition {
		return nil
	}
	return Fail(kind, message("", msg))
}

// Not returns a [Failure] error when condition is true.
func Not(condition bool, msg ...string) error {
	return ThatKind(Failure, !condition, msg...)
}

// NotKind returns an error of the given kind when condition is true.
func NotKind(kind Kind, condition bool, msg ...string) error {
	return ThatKind(kind, !condition, msg...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Values
// ─────────────────────────────────────────────────────────────────────────────

// NotNil returns a [NilReference] error when value is nil, including a typed
// nil pointer, map, slice, channel or func stored in an interface.
func NotNil(value any, msg ...string) error {
	return ThatKind(NilReference, !isNil(value), message(MsgNotNil, msg))
}

// Equal returns a [Failure] error when left != right.
func Equal[T comparable](left, right T, msg ...string) error {
	return That(left == right, message(MsgEqual, msg))
}

// NotEqual returns a [Failure] error when left == right.
func NotEqual[T comparable](left, right T, msg ...string) error {
	return That(left != right, message(MsgNotEqual, msg))
}

// Contains returns a [Failure] error unless at least one item satisfies fn.
// A nil or empty items always fails.
func Contains[T any](items []T, fn func(T) bool, msg ...string) error {
	found := false
	for _, item := range items {
		if fn(item) {
			found = true
			break
		}
	}
	return That(found, msg...)
}

// Items returns a [Failure] error unless every item satisfies fn.
// A nil items fails; an empty, non-nil items passes.
func Items[T any](items []T, fn func(T) bool, msg ...string) error {
	ok := items != nil
	for _, item := range items {
		if !ok {
			break
		}
		ok = fn(item)
	}
	return That(ok, msg...)
}

// NotEmpty returns a [Failure] error when value is "".
func NotEmpty(value string, msg ...string) error {
	return That(value != "", message(MsgNotEmpty, msg))
}

// NotBlank returns a [Failure] error when value is empty or contains only
// white space.
func NotBlank(value string, msg ...string) error {
	return That(strings.TrimSpace(value) != "", message(MsgNotBlank, msg))
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
