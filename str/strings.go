package str

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// DefaultCropEnd is appended by [Crop] when no explicit ending is given.
const DefaultCropEnd = "…"

// ─────────────────────────────────────────────────────────────────────────────
// Shape
// ─────────────────────────────────────────────────────────────────────────────

// Crop shortens s to at most limit runes. When s is longer, the kept prefix
// is followed by end (default [DefaultCropEnd]) and the result is exactly
// limit runes long. Pass "" as end to cut without a marker.
//
//	Crop("qwertyuiopasdfghjkl", 10)        // → "qwertyuio…"
//	Crop("qwertyuiopasdfghjkl", 10, "...") // → "qwertyu..."
func Crop(s string, limit int, end ...string) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	ending := DefaultCropEnd
	if len(end) > 0 {
		ending = end[0]
	}
	runes := []rune(s)
	keep := limit - utf8.RuneCountInString(ending)
	if keep < 0 {
		// the ending alone does not fit
		return string([]rune(ending)[:limit])
	}
	return string(runes[:keep]) + ending
}

var lineBreaks = regexp.MustCompile(`\r\n?|\n`)

// ReplaceLineBreaks replaces every "\r\n", "\r" and "\n" in s with
// replacement.
func ReplaceLineBreaks(s, replacement string) string {
	if s == "" {
		return s
	}
	return lineBreaks.ReplaceAllLiteralString(s, replacement)
}

// SafeSplit splits s around sep. Unlike [strings.Split], an empty s yields an
// empty slice rather than [""].
func SafeSplit(s string, sep rune) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, string(sep))
}

// Replicate returns s repeated count times; a non-positive count yields "".
func Replicate(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// ReplicateRune returns r repeated count times; a non-positive count
// yields "".
func ReplicateRune(r rune, count int) string {
	return Replicate(string(r), count)
}

// RemoveWhitespace removes every Unicode white space character from s.
func RemoveWhitespace(s string) string {
	if s == "" {
		return s
	}
	return strings.Join(strings.Fields(s), "")
}

// Left returns the first length runes of s, or s when it is shorter.
func Left(s string, length int) string {
	if length <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:length])
}

// Right returns the last length runes of s, or s when it is shorter.
func Right(s string, length int) string {
	if length <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[len(runes)-length:])
}

// ConcatWith returns s followed by all values.
func ConcatWith(s string, values ...string) string {
	return s + strings.Join(values, "")
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// ContainsFold reports whether sub occurs in s ignoring case. Empty
// arguments never match.
func ContainsFold(s, sub string) bool {
	if s == "" || sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// In reports whether s is exactly equal to one of values.
func In(s string, values ...string) bool {
	return lo.Contains(values, s)
}

// IsAllCapitals reports whether s is non-blank and every rune is an upper
// case letter.
func IsAllCapitals(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// MatchPattern reports whether s matches the wildcard pattern in full.
// '?' matches any single rune and '*' matches any run of runes; every other
// rune matches itself, case-sensitively. An empty pattern matches nothing.
//
//	MatchPattern("abc", "*a*b*c*") // → true
//	MatchPattern("ab", "AB")       // → false
func MatchPattern(s, pattern string) bool {
	if pattern == "" {
		return false
	}
	var expr strings.Builder
	expr.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			expr.WriteString(".*")
		case '?':
			expr.WriteString(".")
		default:
			expr.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	expr.WriteString("$")
	re, err := regexp.Compile(expr.String())
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Casing and wording
// ─────────────────────────────────────────────────────────────────────────────

// Plural returns the English plural of a singular noun using simple suffix
// rules: sibilants take "es", a final "y" becomes "ies", a final "o"
// becomes "oes" and everything else takes "s".
func Plural(singular string) string {
	switch {
	case singular == "":
		return singular
	case strings.HasSuffix(singular, "sh"),
		strings.HasSuffix(singular, "ch"),
		strings.HasSuffix(singular, "us"),
		strings.HasSuffix(singular, "ss"):
		return singular + "es"
	case strings.HasSuffix(singular, "y"):
		return strings.TrimSuffix(singular, "y") + "ies"
	case strings.HasSuffix(singular, "o"):
		return strings.TrimSuffix(singular, "o") + "oes"
	default:
		return singular + "s"
	}
}

// TitleCase upper-cases the first rune and lower-cases the rest of every
// space separated word. Words written entirely in capitals are kept.
//
//	TitleCase("a DATA set") // → "A DATA Set"
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" || IsAllCapitals(w) {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

var snakeHead = regexp.MustCompile(`(?:^|_)(.)`)

// PascalCase converts snake_case to PascalCase, dropping the underscores.
// Blank input is returned unchanged.
func PascalCase(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return snakeHead.ReplaceAllStringFunc(s, func(m string) string {
		r, _ := utf8.DecodeLastRuneInString(m)
		return string(unicode.ToUpper(r))
	})
}

// CamelCase converts snake_case to camelCase, dropping the underscores.
func CamelCase(s string) string {
	if s == "" {
		return s
	}
	p := PascalCase(s)
	r, size := utf8.DecodeRuneInString(p)
	return string(unicode.ToLower(r)) + p[size:]
}

// Ordinal returns n followed by its English ordinal suffix.
//
//	Ordinal(42)  // → "42nd"
//	Ordinal(112) // → "112th"
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// MaskPlaceholder is the mask rune replaced by input runes in
// [FormatWithMask].
const MaskPlaceholder = '#'

// FormatWithMask lays s out over mask: each '#' takes the next rune of s and
// every other mask rune is copied. Placeholders left after s runs out are
// dropped. An empty s or mask returns s.
//
//	FormatWithMask("1234567890", "A###-B###-C### D#") // → "A123-B456-C789 D0"
func FormatWithMask(s, mask string) string {
	if s == "" || mask == "" {
		return s
	}
	input := []rune(s)
	var out strings.Builder
	out.Grow(len(mask))
	next := 0
	for _, m := range mask {
		if m != MaskPlaceholder {
			out.WriteRune(m)
			continue
		}
		if next < len(input) {
			out.WriteRune(input[next])
			next++
		}
	}
	return out.String()
}

// Reader returns a reader over the UTF-8 bytes of s.
func Reader(s string) *strings.Reader {
	return strings.NewReader(s)
}
