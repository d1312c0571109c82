package mention

// TextHost is the editable text widget the listener coordinates with. The
// host owns the visible buffer, caret, and rendering; the listener only
// tells it what to change and which ranges get which attribute set.
//
// All ranges are in code units (runes) of the host's current text.
type TextHost interface {
	// Text returns the full buffer contents.
	Text() string
	// Selection returns the current caret/selection span. A caret is a
	// zero-length range.
	Selection() Range
	// SetSelection moves the caret/selection.
	SetSelection(Range)
	// Replace substitutes the text in r with s.
	Replace(r Range, s string)
	// ApplyAttributes applies the attribute set over r.
	ApplyAttributes(attrs Attributes, r Range)
	// ScrollIntoView brings r into the visible viewport.
	ScrollIntoView(r Range)
}

// Delegate is an optional downstream observer. The listener forwards every
// event after its own handling; boolean hooks return the delegate's answer
// when one is installed and true otherwise.
type Delegate interface {
	ShouldChangeText(r Range, text string) bool
	DidChangeText()
	DidChangeSelection(sel Range)
	DidBeginEditing()
	DidEndEditing()
	ShouldInteractWith(url string, r Range) bool
}
