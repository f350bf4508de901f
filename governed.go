package hlayout

import (
	"strings"

	"github.com/hashicorp/hlayout/events"
	"github.com/pkg/errors"
)

var (
	// ErrMissingPlaceholder is returned when a layout does not contain its
	// body placeholder marker.
	ErrMissingPlaceholder = errors.New("body placeholder not found in layout")

	// ErrInvalidPartial is returned when a partial has no matcher, has both
	// kinds of matcher, or has an empty placeholder.
	ErrInvalidPartial = errors.New("invalid partial")
)

// GovernedTemplateInput is used as input when creating a governed template.
type GovernedTemplateInput struct {
	// Path names the layout source handed to Reader.
	Path string

	// Reader loads the layout. Defaults to a FileReader with no sandbox.
	Reader TextReader

	// Options configures the template. Nil uses the defaults, otherwise its
	// zero fields are filled from the defaults.
	Options *GovernedTemplateOptions

	// EventHandler receives events about loading and composing. It is called
	// from every goroutine that invokes the composer.
	EventHandler events.EventHandler
}

// governedTemplate is the immutable state captured by a governed Composer.
type governedTemplate struct {
	path      string
	bodyStart string
	bodyEnd   string
	escape    bool
	partials  []Partial
	event     events.EventHandler
}

// GovernedTemplate reads the layout at layoutPath from disk and returns a
// Composer that renders its Segments into the layout. See
// NewGovernedTemplate.
func GovernedTemplate(layoutPath string, opts *GovernedTemplateOptions) (Composer, error) {
	return NewGovernedTemplate(GovernedTemplateInput{
		Path:    layoutPath,
		Options: opts,
	})
}

// NewGovernedTemplate loads the layout once and splits it at the first
// occurrence of the body placeholder. The returned Composer concatenates its
// Segments into a body, escapes it if configured, places it between the two
// halves of the layout and then applies the partials in order.
//
// A layout that can't be read, a layout without the placeholder and a
// malformed partial are all errors here, never at call time.
func NewGovernedTemplate(i GovernedTemplateInput) (Composer, error) {
	reader := i.Reader
	if reader == nil {
		reader = FileReader{}
	}
	opts, err := DefaultGovernedTemplateOptions(i.Options)
	if err != nil {
		return nil, err
	}

	for n, p := range opts.Partials {
		if err := validatePartial(p); err != nil {
			return nil, errors.Wrapf(err, "partial %d", n)
		}
	}

	source, err := reader.ReadText(i.Path)
	if err != nil {
		return nil, errors.Wrap(err, "layout")
	}
	i.EventHandler.Emit(events.LayoutLoaded{Path: i.Path, Size: len(source)})

	marker := opts.BodyPlaceholderText
	start, end, found := strings.Cut(source, marker)
	if !found {
		return nil, errors.Wrapf(ErrMissingPlaceholder, "layout %s: %q",
			i.Path, marker)
	}
	i.EventHandler.Emit(events.LayoutSplit{
		Path:        i.Path,
		Marker:      marker,
		Occurrences: 1 + strings.Count(end, marker),
	})

	t := &governedTemplate{
		path:      i.Path,
		bodyStart: start,
		bodyEnd:   end,
		escape:    opts.EscapeBodyContent,
		partials:  opts.Partials,
		event:     i.EventHandler,
	}
	return t.compose, nil
}

func validatePartial(p Partial) error {
	switch {
	case p.Pattern != nil && p.Placeholder != "":
		return errors.Wrap(ErrInvalidPartial, "both placeholder and pattern set")
	case p.Pattern != nil:
		if p.Pattern.String() == "" {
			return errors.Wrap(ErrInvalidPartial, "empty pattern")
		}
	case p.Placeholder == "":
		return errors.Wrap(ErrInvalidPartial, "no placeholder or pattern")
	}
	return nil
}

func (t *governedTemplate) compose(s Segments) string {
	body := s.String()
	if t.escape {
		body = EscapeHTML(body)
	}

	result := t.bodyStart + body + t.bodyEnd
	for _, p := range t.partials {
		result = t.applyPartial(result, p)
	}

	t.event.Emit(events.Composed{Path: t.path, Size: len(result)})
	return result
}

// applyPartial replaces every match of p in s with p.Content.
func (t *governedTemplate) applyPartial(s string, p Partial) string {
	if t.event != nil {
		var matches int
		if p.Pattern != nil {
			matches = len(p.Pattern.FindAllStringIndex(s, -1))
		} else {
			matches = strings.Count(s, p.Placeholder)
		}
		t.event(events.PartialApplied{Placeholder: p.matcher(), Matches: matches})
	}

	if p.Pattern != nil {
		return p.Pattern.ReplaceAllLiteralString(s, p.Content)
	}
	return strings.ReplaceAll(s, p.Placeholder, p.Content)
}
