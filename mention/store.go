package mention

import "sort"

// store keeps the committed mentions ordered by location. Spans are
// pairwise disjoint; insert rejects violations instead of corrupting the
// invariant.
type store struct {
	items []Mention
}

func (s *store) insert(m Mention) bool {
	if m.Range.Length < 1 {
		return false
	}
	for _, cur := range s.items {
		if cur.Range.Overlaps(m.Range) {
			return false
		}
	}
	at := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].Range.Location > m.Range.Location
	})
	s.items = append(s.items, Mention{})
	copy(s.items[at+1:], s.items[at:])
	s.items[at] = m
	return true
}

// remove deletes the mention occupying m's span. Spans are disjoint, so the
// location identifies the entry.
func (s *store) remove(m Mention) bool {
	for i, cur := range s.items {
		if cur.Range.Location == m.Range.Location {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// beingEdited returns the mention the edit range touches: either the spans
// share at least one code unit, or a zero-length edit (a caret insert) sits
// strictly inside the mention. Typing at either boundary does not count —
// those edits shift the span instead.
func (s *store) beingEdited(edit Range) (Mention, bool) {
	for _, cur := range s.items {
		if cur.Range.Overlaps(edit) {
			return cur, true
		}
		if edit.Length == 0 && cur.Range.Contains(edit.Location) && edit.Location > cur.Range.Location {
			return cur, true
		}
	}
	return Mention{}, false
}

// adjust shifts every mention for the edit. Mentions the edit invalidates
// are dropped and returned so the caller can restore their styling.
func (s *store) adjust(e Edit) (dropped []Mention) {
	kept := s.items[:0]
	for _, cur := range s.items {
		shifted, ok := cur.Range.Shift(e)
		if !ok {
			dropped = append(dropped, cur)
			continue
		}
		cur.Range = shifted
		kept = append(kept, cur)
	}
	s.items = kept
	return dropped
}

// all returns a snapshot of the mentions in location order.
func (s *store) all() []Mention {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]Mention, len(s.items))
	copy(out, s.items)
	return out
}

func (s *store) reset() { s.items = nil }
