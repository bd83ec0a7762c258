// Package str provides pure string helpers: cropping and casing, slug and URL
// generation, HTML stripping and encoding, wildcard matching, fixed-mask
// formatting and human readable relative times. It also carries a chaining
// string builder, a Stringable wrapper and a set of common symbols.
//
// Every helper is a deterministic function of its arguments and is safe for
// concurrent use. Empty input is returned unchanged unless a function
// documents otherwise; [MatchPattern], for instance, never matches an empty
// pattern.
//
// Helpers count characters in runes, never bytes:
//
//	str.Crop("Müller & Söhne GmbH", 10)   // → "Müller & …"
//	str.Left("日本語テキスト", 3)           // → "日本語"
//
// Line-oriented helpers use "\n" as the line terminator.
package str
