package editor

import (
	"reflect"

	"github.com/asifhabib/mentions/mention"
)

// attrSpan records one attributed run of the field's text.
type attrSpan struct {
	r     mention.Range
	attrs mention.Attributes
}

// field is the component's text state: rune-addressed contents, caret or
// selection, and attributed spans. It implements mention.TextHost; ranges
// are in runes.
type field struct {
	text  []rune
	sel   mention.Range
	spans []attrSpan

	defaultAttrs mention.Attributes
	scrollTo     mention.Range
	hasScrollTo  bool
}

func newField(text string, defaultAttrs mention.Attributes) *field {
	f := &field{text: []rune(text), defaultAttrs: defaultAttrs}
	f.sel = mention.Range{Location: len(f.text)}
	return f
}

func (f *field) Text() string { return string(f.text) }

func (f *field) Selection() mention.Range { return f.sel }

func (f *field) SetSelection(r mention.Range) { f.sel = f.clamp(r) }

func (f *field) Replace(r mention.Range, s string) {
	r = f.clamp(r)
	ins := []rune(s)

	next := make([]rune, 0, len(f.text)-r.Length+len(ins))
	next = append(next, f.text[:r.Location]...)
	next = append(next, ins...)
	next = append(next, f.text[r.End():]...)
	f.text = next

	edit := mention.Edit{Location: r.Location, OldLength: r.Length, NewLength: len(ins)}
	kept := f.spans[:0]
	for _, sp := range f.spans {
		shifted, ok := sp.r.Shift(edit)
		if !ok {
			continue
		}
		sp.r = shifted
		kept = append(kept, sp)
	}
	f.spans = kept
	f.sel = f.clamp(f.sel)
}

// ApplyAttributes overwrites the attribute set over r. Applying the default
// set just erases any span there; non-default sets claim the range.
func (f *field) ApplyAttributes(attrs mention.Attributes, r mention.Range) {
	r = f.clamp(r)
	if r.IsEmpty() {
		return
	}

	next := make([]attrSpan, 0, len(f.spans)+1)
	for _, sp := range f.spans {
		next = append(next, subtractSpan(sp, r)...)
	}
	if !reflect.DeepEqual(attrs, f.defaultAttrs) {
		next = append(next, attrSpan{r: r, attrs: attrs})
	}
	f.spans = next
}

func (f *field) ScrollIntoView(r mention.Range) {
	f.scrollTo = r
	f.hasScrollTo = true
}

// attributesAt returns the attribute set covering the rune at index.
func (f *field) attributesAt(index int) mention.Attributes {
	for _, sp := range f.spans {
		if sp.r.Contains(index) {
			return sp.attrs
		}
	}
	return f.defaultAttrs
}

func (f *field) clamp(r mention.Range) mention.Range {
	if r.Location < 0 {
		r.Location = 0
	}
	if r.Location > len(f.text) {
		r.Location = len(f.text)
	}
	if r.Length < 0 {
		r.Length = 0
	}
	if r.End() > len(f.text) {
		r.Length = len(f.text) - r.Location
	}
	return r
}

// subtractSpan returns sp with the cut range removed, splitting it in two
// when the cut lands in the middle.
func subtractSpan(sp attrSpan, cut mention.Range) []attrSpan {
	if !sp.r.Overlaps(cut) {
		return []attrSpan{sp}
	}

	var out []attrSpan
	if sp.r.Location < cut.Location {
		out = append(out, attrSpan{
			r:     mention.Range{Location: sp.r.Location, Length: cut.Location - sp.r.Location},
			attrs: sp.attrs,
		})
	}
	if sp.r.End() > cut.End() {
		out = append(out, attrSpan{
			r:     mention.Range{Location: cut.End(), Length: sp.r.End() - cut.End()},
			attrs: sp.attrs,
		})
	}
	return out
}
