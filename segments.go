package hlayout

import (
	"fmt"
	"strings"
)

// Segments is the ordered interleaving of literal template text and
// placeholder values handed to a Composer. It renders as
//
//	Literals[0] Values[0] Literals[1] Values[1] ... Literals[n]
//
// and is normally built with NewSegments or Text at the call site.
//
// Well formed Segments carry exactly one more literal than values. Anything
// else still renders: a missing literal counts as the empty string and extra
// literals are appended in order.
type Segments struct {
	Literals []string
	Values   []interface{}
}

// NewSegments returns Segments for the literal fragments and the values
// that go between them.
func NewSegments(literals []string, values ...interface{}) Segments {
	return Segments{Literals: literals, Values: values}
}

// Text returns Segments holding a single literal and no values.
func Text(s string) Segments {
	return Segments{Literals: []string{s}}
}

// String concatenates the segments with the values inserted unescaped.
func (s Segments) String() string {
	return s.join(toString)
}

// join concatenates the segments, passing each value through conv.
// Literals are never converted.
func (s Segments) join(conv func(interface{}) string) string {
	var b strings.Builder
	for i, v := range s.Values {
		if i < len(s.Literals) {
			b.WriteString(s.Literals[i])
		}
		b.WriteString(conv(v))
	}
	for i := len(s.Values); i < len(s.Literals); i++ {
		b.WriteString(s.Literals[i])
	}
	return b.String()
}

// toString coerces a placeholder value to its string form.
func toString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		// fmt handles Stringer and error values, including nil pointers
		// whose methods have value receivers.
		return fmt.Sprint(v)
	}
}
