package ensure

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────────────────────
// Argument guards
//
// Argument guards name the offending parameter in [Error.Param] and report
// [ArgumentNil] or [ArgumentInvalid].
// ─────────────────────────────────────────────────────────────────────────────

// ArgIs returns an [ArgumentInvalid] error when condition is false.
func ArgIs(condition bool, msg ...string) error {
	return ThatKind(ArgumentInvalid, condition, msg...)
}

// ArgIsNot returns an [ArgumentInvalid] error when condition is true.
func ArgIsNot(condition bool, msg ...string) error {
	return ThatKind(ArgumentInvalid, !condition, msg...)
}

// ArgNotNil returns an [ArgumentNil] error naming param when value is nil.
func ArgNotNil(value any, param string) error {
	if !isNil(value) {
		return nil
	}
	return failArg(ArgumentNil, param, "Value cannot be nil.")
}

// ArgNotEmptyUUID returns an [ArgumentInvalid] error when value is the nil
// UUID.
func ArgNotEmptyUUID(value uuid.UUID, param string) error {
	if value != uuid.Nil {
		return nil
	}
	return failArg(ArgumentInvalid, param, fmt.Sprintf("Value cannot be %s.", uuid.Nil))
}

// ArgNotEmptyUUIDPtr is [ArgNotEmptyUUID] for an optional UUID; a nil pointer
// also fails.
func ArgNotEmptyUUIDPtr(value *uuid.UUID, param string) error {
	if value == nil {
		return failArg(ArgumentInvalid, param, fmt.Sprintf("Value cannot be %s.", uuid.Nil))
	}
	return ArgNotEmptyUUID(*value, param)
}

// ArgNotEmpty returns an [ArgumentNil] error when value is "".
func ArgNotEmpty(value, param string) error {
	if value != "" {
		return nil
	}
	return failArg(ArgumentNil, param, MsgNotEmpty)
}

// ArgNotBlank returns an [ArgumentNil] error when value is empty or white
// space only.
func ArgNotBlank(value, param string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return failArg(ArgumentNil, param, MsgNotBlank)
}

// ArgIsEmpty requires items to be empty but not nil. A nil items reports
// [ArgumentNil]; a non-empty one reports [ArgumentInvalid].
func ArgIsEmpty[T any](items []T, param string) error {
	if items == nil {
		return failArg(ArgumentNil, param, "")
	}
	if len(items) > 0 {
		return failArg(ArgumentInvalid, param, "Value must be an empty slice.")
	}
	return nil
}

// ArgIsNilOrEmpty returns an [ArgumentInvalid] error when items has elements.
func ArgIsNilOrEmpty[T any](items []T, param string) error {
	if len(items) == 0 {
		return nil
	}
	return failArg(ArgumentInvalid, param, "Value must be a nil or empty slice.")
}

// ArgNotEmptySlice returns an [ArgumentNil] error when items is nil or empty.
func ArgNotEmptySlice[T any](items []T, param string) error {
	if len(items) > 0 {
		return nil
	}
	return failArg(ArgumentNil, param, "")
}

// ArgIsType returns an [ArgumentInvalid] error when value does not hold a T.
// A nil value never holds a T.
func ArgIsType[T any](value any, param string) error {
	_, err := ArgType[T](value, param)
	return err
}

// ArgType casts value to T, returning an [ArgumentInvalid] error when value
// does not hold a T.
//
//	n, err := ensure.ArgType[int](v, "v")
func ArgType[T any](value any, param string) (T, error) {
	if t, ok := value.(T); ok {
		return t, nil
	}
	var zero T
	return zero, failArg(ArgumentInvalid, param, fmt.Sprintf("Value must be %s.", typeName[T]()))
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
