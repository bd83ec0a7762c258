package str

import (
	"fmt"
	"strings"
)

// Builder is a [strings.Builder] with chaining, conditional and formatting
// appends. Its zero value is ready to use; do not copy a non-zero Builder.
//
//	var b str.Builder
//	b.AppendLinef("%d%% of %s data", 1, "post").
//	    AppendIf(verbose, details).
//	    AppendLineMask("+# (###) ###-##-##", phone)
type Builder struct {
	strings.Builder
}

// LineTerminator ends every line written by the AppendLine family.
const LineTerminator = "\n"

// AppendLine appends s followed by a line terminator.
func (b *Builder) AppendLine(s string) *Builder {
	b.WriteString(s)
	b.WriteString(LineTerminator)
	return b
}

// AppendLinef appends a formatted line.
func (b *Builder) AppendLinef(format string, args ...any) *Builder {
	fmt.Fprintf(&b.Builder, format, args...)
	b.WriteString(LineTerminator)
	return b
}

// AppendIf appends the default format of v when cond is true.
func (b *Builder) AppendIf(cond bool, v any) *Builder {
	if cond {
		fmt.Fprint(&b.Builder, v)
	}
	return b
}

// AppendLineIf appends the default format of v as a line when cond is true.
func (b *Builder) AppendLineIf(cond bool, v any) *Builder {
	if cond {
		fmt.Fprint(&b.Builder, v)
		b.WriteString(LineTerminator)
	}
	return b
}

// AppendLineIff appends a formatted line when cond is true.
func (b *Builder) AppendLineIff(cond bool, format string, args ...any) *Builder {
	if cond {
		b.AppendLinef(format, args...)
	}
	return b
}

// AppendFormatIf appends formatted text when cond is true.
func (b *Builder) AppendFormatIf(cond bool, format string, args ...any) *Builder {
	if cond {
		fmt.Fprintf(&b.Builder, format, args...)
	}
	return b
}

// AppendIfMatch appends value when it matches the wildcard pattern
// (see [MatchPattern]).
func (b *Builder) AppendIfMatch(pattern, value string) *Builder {
	if MatchPattern(value, pattern) {
		b.WriteString(value)
	}
	return b
}

// AppendLineIfMatch appends value as a line when it matches the wildcard
// pattern.
func (b *Builder) AppendLineIfMatch(pattern, value string) *Builder {
	if MatchPattern(value, pattern) {
		b.AppendLine(value)
	}
	return b
}

// AppendMask appends value laid out over mask (see [FormatWithMask]).
func (b *Builder) AppendMask(mask, value string) *Builder {
	b.WriteString(FormatWithMask(value, mask))
	return b
}

// AppendLineMask appends value laid out over mask as a line.
func (b *Builder) AppendLineMask(mask, value string) *Builder {
	return b.AppendLine(FormatWithMask(value, mask))
}
