package mention

// Range is a half-open span [Location, Location+Length) in code units.
type Range struct {
	Location int
	Length   int
}

// Edit describes replacing OldLength code units at Location with NewLength
// new units.
type Edit struct {
	Location  int
	OldLength int
	NewLength int
}

func (r Range) End() int { return r.Location + r.Length }

func (r Range) IsEmpty() bool { return r.Length == 0 }

// Contains reports whether point falls inside the span.
func (r Range) Contains(point int) bool {
	return point >= r.Location && point < r.End()
}

// Overlaps reports whether the two spans share at least one code unit.
func (r Range) Overlaps(o Range) bool {
	return r.Location < o.End() && o.Location < r.End()
}

// Delta is the signed length change the edit applies to the buffer.
func (e Edit) Delta() int { return e.NewLength - e.OldLength }

// Shift returns the range's position after the edit has been applied.
//
// Edits strictly before the range shift it by the length delta; edits
// strictly after leave it unchanged. An edit that overlaps the range's
// interior cannot be expressed as a shift: ok is false and the range must
// be invalidated by the caller.
func (r Range) Shift(e Edit) (shifted Range, ok bool) {
	editEnd := e.Location + e.OldLength
	switch {
	case editEnd <= r.Location:
		return Range{Location: r.Location + e.Delta(), Length: r.Length}, true
	case e.Location >= r.End():
		return r, true
	default:
		return Range{}, false
	}
}
