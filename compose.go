package hlayout

// Composer renders Segments into a string. The composers returned by this
// package hold no mutable state and are safe for concurrent use.
type Composer func(Segments) string

// HTMLEscape concatenates the segments with the values inserted as-is and
// then escapes the entire result once. Literal text is escaped too, so a
// literal "<b>" comes out as "&lt;b&gt;".
func HTMLEscape(s Segments) string {
	return EscapeHTML(s.String())
}

// HTMLEscapePlaceholders escapes each value individually before inserting it
// between the literal fragments. Literal text is trusted and never touched.
func HTMLEscapePlaceholders(s Segments) string {
	return s.join(escapeValue)
}

// HTMLTag returns a Composer that wraps the concatenated segments in an
// opening and closing tagName tag. When escapeResult is set the body is
// escaped before wrapping. tagName is used verbatim; no attributes are
// supported and no validation is done.
func HTMLTag(tagName string, escapeResult bool) Composer {
	openTag, closeTag := "<"+tagName+">", "</"+tagName+">"
	return func(s Segments) string {
		body := s.String()
		if escapeResult {
			body = EscapeHTML(body)
		}
		return openTag + body + closeTag
	}
}
