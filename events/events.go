package events

// EventHandler is the interface of the call back function for receiving events.
type EventHandler func(Event)

// Event is used to type restrict the Events
type Event interface {
	isEvent()
}

// LayoutLoaded indicates a layout source was read by a governed template.
type LayoutLoaded struct {
	Path string
	Size int
	event
}

// LayoutSplit indicates the layout was cut at its body marker. Occurrences
// is the number of times the marker appears; only the first is used.
type LayoutSplit struct {
	Path        string
	Marker      string
	Occurrences int
	event
}

// Composed indicates a governed template rendered a page.
type Composed struct {
	Path string
	Size int
	event
}

// PartialApplied indicates a partial substitution was applied to a page.
type PartialApplied struct {
	Placeholder string
	Matches     int
	event
}

// RenderWritten indicates rendered contents were handed to a file renderer.
// DidRender is false when the file already held the same contents.
type RenderWritten struct {
	Path      string
	DidRender bool
	event
}

// Event interface type fulfillment
type event struct{}

func (event) isEvent() {}

// Emit sends e to h unless h is nil.
func (h EventHandler) Emit(e Event) {
	if h != nil {
		h(e)
	}
}
