package hlayout

import (
	"strings"
)

// htmlEscapeChars are the only characters EscapeHTML rewrites.
const htmlEscapeChars = `"&'<>`

// EscapeHTML escapes the five HTML-sensitive characters in s.
//
//	"  &quot;
//	&  &amp;
//	'  &#39;
//	<  &lt;
//	>  &gt;
//
// Every other byte, including any non-ASCII text, is copied verbatim. The
// function is not idempotent; escaping "&amp;" yields "&amp;amp;".
func EscapeHTML(s string) string {
	first := strings.IndexAny(s, htmlEscapeChars)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	last := 0
	for i := first; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '"':
			esc = "&quot;"
		case '&':
			esc = "&amp;"
		case '\'':
			esc = "&#39;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		default:
			continue
		}

		if last != i {
			b.WriteString(s[last:i])
		}
		last = i + 1
		b.WriteString(esc)
	}

	if last != len(s) {
		b.WriteString(s[last:])
	}
	return b.String()
}

// escapeValue coerces a placeholder value to a string and escapes it.
func escapeValue(v interface{}) string {
	return EscapeHTML(toString(v))
}
