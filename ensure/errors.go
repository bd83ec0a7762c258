package ensure

import "strings"

// Kind categorises a failed precondition. Kind implements error so that
// [errors.Is] can match any [*Error] against its category.
type Kind uint8

const (
	// Failure is the default category for a violated precondition.
	Failure Kind = iota
	// ArgumentNil reports a required argument that is nil or empty.
	ArgumentNil
	// ArgumentInvalid reports an argument with a wrong type or value.
	ArgumentInvalid
	// NotSupported reports an operation the target cannot perform.
	NotSupported
	// NilReference reports a nil value where a value was required.
	NilReference
	// OutOfRange reports an index or value outside its allowed range.
	OutOfRange
	// NotImplemented reports a code path that has no implementation.
	NotImplemented
)

var kindNames = [...]string{
	Failure:         "failure",
	ArgumentNil:     "argument nil",
	ArgumentInvalid: "argument invalid",
	NotSupported:    "not supported",
	NilReference:    "nil reference",
	OutOfRange:      "out of range",
	NotImplemented:  "not implemented",
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Error implements error.
func (k Kind) Error() string { return "ensure: " + k.String() }

// Error is the error returned by every failed guard.
type Error struct {
	// Kind is the failure category.
	Kind Kind
	// Param names the offending argument. Empty for non-argument guards.
	Param string
	// Message describes the failure. May be empty.
	Message string
}

// Fail builds an [*Error] of the given kind.
func Fail(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// failArg builds an argument [*Error] naming param.
func failArg(kind Kind, param, message string) *Error {
	return &Error{Kind: kind, Param: param, Message: message}
}

// Error formats the error as "ensure: <kind>: <message> (parameter <param>)",
// omitting empty parts.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Param != "" {
		b.WriteString(" (parameter ")
		b.WriteString(e.Param)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the error's [Kind].
func (e *Error) Unwrap() error { return e.Kind }

// Must panics with err when it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// message returns msgs[0] when supplied and def otherwise.
func message(def string, msgs []string) string {
	if len(msgs) > 0 {
		return msgs[0]
	}
	return def
}
