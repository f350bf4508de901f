package hlayout

import (
	"regexp"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
)

// DefaultBodyPlaceholderText is the marker a layout carries where the body
// is inserted, unless GovernedTemplateOptions names another.
const DefaultBodyPlaceholderText = "<!-- BODY CONTENT GOES HERE -->"

// GovernedTemplateOptions configures a governed template. The zero value of
// each field means "use the default".
type GovernedTemplateOptions struct {
	// BodyPlaceholderText is the marker in the layout that is replaced by the
	// rendered body. Defaults to DefaultBodyPlaceholderText.
	BodyPlaceholderText string

	// EscapeBodyContent causes the concatenated body to be passed through
	// EscapeHTML before it is inserted into the layout.
	EscapeBodyContent bool

	// Partials are applied to the composed page in declaration order. Each
	// one replaces every match of its placeholder and the next one scans the
	// result.
	Partials []Partial
}

// Partial is a substitution applied to the page after the body has been
// inserted into the layout. Exactly one of Placeholder or Pattern must be
// set. Content is inserted literally; "$1" style references in a Pattern
// replacement are not expanded.
type Partial struct {
	// Placeholder is matched exactly.
	Placeholder string

	// Pattern is matched as a regular expression.
	Pattern *regexp.Regexp

	// Content replaces every match.
	Content string
}

// matcher returns a human readable name for the partial's matcher, used in
// errors and events.
func (p Partial) matcher() string {
	if p.Pattern != nil {
		return p.Pattern.String()
	}
	return p.Placeholder
}

// DefaultGovernedTemplateOptions returns a fresh options value with every
// zero field of override filled in from the defaults. A nil override yields
// the defaults alone. Partials are only set when override provides them.
func DefaultGovernedTemplateOptions(override *GovernedTemplateOptions) (GovernedTemplateOptions, error) {
	var opts GovernedTemplateOptions
	if override != nil {
		opts = *override
		if override.Partials != nil {
			opts.Partials = append([]Partial(nil), override.Partials...)
		}
	}

	defaults := GovernedTemplateOptions{
		BodyPlaceholderText: DefaultBodyPlaceholderText,
	}
	if err := mergo.Merge(&opts, defaults); err != nil {
		return GovernedTemplateOptions{}, errors.Wrap(err, "merge options")
	}
	return opts, nil
}
