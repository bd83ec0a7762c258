package str

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var htmlWhitespace = strings.NewReplacer("\t", " ", "\r\n", "")

// StripHTML removes every tag, comment and doctype from markup and returns
// the remaining text. Tabs become spaces, CRLF line breaks are dropped and
// runs of two or three spaces are squeezed. Entities are left as written.
//
//	StripHTML("<h1>My First Heading</h1>\r\n<p>Hi</p>") // → "My First HeadingHi"
func StripHTML(markup string) string {
	if markup == "" {
		return ""
	}
	var text strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			text.Write(z.Raw())
		}
	}
	s := htmlWhitespace.Replace(text.String())
	s = strings.ReplaceAll(s, "   ", " ")
	return strings.ReplaceAll(s, "  ", " ")
}

// HTMLEncode escapes < > " and & and writes every rune above U+009F as a
// decimal numeric entity.
//
//	HTMLEncode(`<a href="x">café</a>`) // → "&lt;a href=&quot;x&quot;&gt;caf&#233;&lt;/a&gt;"
func HTMLEncode(text string) string {
	if text == "" {
		return ""
	}
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '<':
			out.WriteString("&lt;")
		case r == '>':
			out.WriteString("&gt;")
		case r == '"':
			out.WriteString("&quot;")
		case r == '&':
			out.WriteString("&amp;")
		case r > 159:
			out.WriteString("&#")
			out.WriteString(strconv.Itoa(int(r)))
			out.WriteByte(';')
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
