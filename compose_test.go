package hlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLTag(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		div := HTMLTag("div", false)
		assert.Equal(t, "<div>hi</div>", div(Text("hi")))
		assert.Equal(t, "<div><b>x</b></div>",
			div(NewSegments([]string{"<b>", "</b>"}, "x")))
	})

	t.Run("escaped", func(t *testing.T) {
		div := HTMLTag("div", true)
		assert.Equal(t, "<div>&lt;b&gt;</div>", div(Text("<b>")))
	})

	t.Run("empty_body", func(t *testing.T) {
		assert.Equal(t, "<p></p>", HTMLTag("p", false)(Segments{}))
	})

	t.Run("tag_name_verbatim", func(t *testing.T) {
		assert.Equal(t, `<a href="x">y</a href="x">`,
			HTMLTag(`a href="x"`, false)(Text("y")))
	})
}

func TestHTMLEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;img&gt;",
		HTMLEscape(NewSegments([]string{"", ""}, "<img>")))

	// literal text is escaped along with the values
	assert.Equal(t, "&lt;b&gt;&amp;&lt;/b&gt;",
		HTMLEscape(NewSegments([]string{"<b>", "</b>"}, "&")))
}

func TestHTMLEscapePlaceholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a &lt;x&gt; b",
		HTMLEscapePlaceholders(NewSegments([]string{"a ", " b"}, "<x>")))

	// literal text is never touched
	assert.Equal(t, "<b>&amp;&lt;</b>",
		HTMLEscapePlaceholders(NewSegments([]string{"<b>", "</b>"}, "&<")))

	assert.Equal(t, "n=7&",
		HTMLEscapePlaceholders(NewSegments([]string{"n=", "&"}, 7)))

	assert.Equal(t, "a&lt;nil&gt;b",
		HTMLEscapePlaceholders(NewSegments([]string{"a", "b"}, (*label)(nil))))
}

func TestEscapingComposersDiffer(t *testing.T) {
	t.Parallel()

	s := NewSegments([]string{"<i>", "</i>"}, "'q'")
	assert.Equal(t, "&lt;i&gt;&#39;q&#39;&lt;/i&gt;", HTMLEscape(s))
	assert.Equal(t, "<i>&#39;q&#39;</i>", HTMLEscapePlaceholders(s))
}
