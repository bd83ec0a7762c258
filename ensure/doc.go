// Package ensure provides precondition guards that validate a condition and
// report a categorised error when it does not hold.
//
// Every guard returns nil when the condition passes and has no side effects.
// When the condition fails it returns an [*Error] carrying a [Kind], an
// optional parameter name and a message:
//
//	if err := ensure.ArgNotBlank(name, "name"); err != nil {
//	    return err
//	}
//	if err := ensure.That(len(parts) == 3, "expected three parts"); err != nil {
//	    return err
//	}
//
// # Kinds
//
// A [Kind] is itself an error, so callers test the category with [errors.Is]:
//
//	errors.Is(err, ensure.ArgumentNil)     // a required argument was nil/empty
//	errors.Is(err, ensure.ArgumentInvalid) // wrong type, out of range, …
//	errors.Is(err, ensure.Failure)         // generic precondition violation
//
// Use [ThatKind] / [NotKind] to raise a specific category, or [Fail] to build
// an error directly.
//
// # Messages
//
// Guards take an optional trailing message. When it is omitted the guard's
// documented default is used; an explicitly supplied message, including "",
// is used verbatim. The resulting error text is always displayable.
//
// # Panicking
//
// Code that prefers raise-on-failure semantics can wrap any guard in [Must]:
//
//	ensure.Must(ensure.ArgNotNil(cfg, "cfg"))
package ensure
