package str

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSegmentSeparator separates slug segments in [SlugWithSegments].
const DefaultSegmentSeparator = '/'

// DefaultURLMaxLength is the [URLFriendly] length limit when none is given.
const DefaultURLMaxLength = 80

var (
	slugSymbols = strings.NewReplacer(
		"#", "-sharp ",
		"@", "-at ",
		"$", "-dollar ",
		"%", "-percent ",
		"&", "-and ",
		"||", "-or ",
	)
	// white space, em dash, en dash, underscore
	slugDelimiters = regexp.MustCompile(`[\s\p{Z}—–_]`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\-]`)
	slugHyphenRuns = regexp.MustCompile(`-{2,}`)
)

// removeDiacritics decomposes s, drops non-spacing marks and recomposes it,
// turning "marrón" into "marron".
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slug converts s into a lower case, hyphen separated URL slug. Accents are
// stripped, the symbols # @ $ % & and || are spelled out and every other
// character outside [a-z0-9-] is removed.
//
//	Slug("The price $10 is more than 10% of Rock&Roll song price.")
//	// → "the-price-dollar-10-is-more-than-10-percent-of-rock-and-roll-song-price"
func Slug(s string) string {
	if s == "" {
		return ""
	}
	s = removeDiacritics(strings.ToLower(s))
	s = slugSymbols.Replace(s)
	s = slugDelimiters.ReplaceAllLiteralString(s, "-")
	s = slugInvalid.ReplaceAllLiteralString(s, "")
	s = slugHyphenRuns.ReplaceAllLiteralString(s, "-")
	return strings.Trim(s, "-")
}

// SlugWithSegments slugs every segment of s separately, keeping the
// separator (default '/') between them. Empty segments are dropped.
//
//	SlugWithSegments("blog/1020/El zorro marrón") // → "blog/1020/el-zorro-marron"
func SlugWithSegments(s string, sep ...rune) string {
	if s == "" {
		return ""
	}
	separator := DefaultSegmentSeparator
	if len(sep) > 0 {
		separator = sep[0]
	}
	var out strings.Builder
	for _, segment := range strings.Split(s, string(separator)) {
		if segment == "" {
			continue
		}
		out.WriteRune(separator)
		out.WriteString(Slug(segment))
	}
	return strings.Trim(out.String(), string(separator))
}

// URLFriendly converts a title into a short, lower case, hyphen separated
// URL fragment of at most maxLength runes (default [DefaultURLMaxLength]).
// ASCII letters and digits are kept; spaces and the punctuation , . / \ - _ =
// collapse into single hyphens; other ASCII is dropped. Non-ASCII runes are
// kept as is, or with remapToASCII mapped to an ASCII spelling ("è" → "e",
// "ß" → "ss") and dropped when no spelling is known.
func URLFriendly(title string, remapToASCII bool, maxLength ...int) string {
	limit := DefaultURLMaxLength
	if len(maxLength) > 0 {
		limit = maxLength[0]
	}
	out := make([]rune, 0, len(title))
	prevDash := false
	for _, c := range title {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
			prevDash = false
		case c >= 'A' && c <= 'Z':
			out = append(out, c|32)
			prevDash = false
		case strings.ContainsRune(" ,./\\-_=", c):
			if !prevDash && len(out) > 0 {
				out = append(out, '-')
				prevDash = true
			}
		case c >= 128:
			before := len(out)
			if remapToASCII {
				out = append(out, []rune(remapToASCIISpelling(c))...)
			} else {
				out = append(out, c)
			}
			if len(out) != before {
				prevDash = false
			}
		}
		if len(out) >= limit {
			break
		}
	}
	if len(out) > 0 && (prevDash || len(out) > limit) {
		out = out[:len(out)-1]
	}
	return string(out)
}

var asciiSpellings = []struct {
	from string
	to   string
}{
	{"àåáâäãåąā", "a"},
	{"òóôõöøőð", "o"},
	{"èéêěëę", "e"},
	{"ùúûüŭů", "u"},
	{"ìíîïı", "i"},
	{"śşšŝ", "s"},
	{"çćčĉ", "c"},
	{"żźž", "z"},
	{"ĺľł", "l"},
	{"ñń", "n"},
	{"ýÿ", "y"},
	{"ğĝ", "g"},
	{"ŕř", "r"},
	{"đď", "d"},
}

// remapToASCIISpelling returns the ASCII spelling of an international rune,
// or "" when none is known.
func remapToASCIISpelling(c rune) string {
	lower := unicode.ToLower(c)
	for _, sp := range asciiSpellings {
		if strings.ContainsRune(sp.from, lower) {
			return sp.to
		}
	}
	switch c {
	case 'ß':
		return "ss"
	case 'Þ':
		return "th"
	case 'ť':
		return "t"
	case 'ĥ':
		return "h"
	case 'ĵ':
		return "j"
	}
	return ""
}
