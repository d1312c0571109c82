package mention

import "testing"

type testEntity struct {
	name string
	id   string
}

func (e testEntity) MentionName() string { return e.name }

func mentionAt(loc, length int, text string) Mention {
	return Mention{
		Range:  Range{Location: loc, Length: length},
		Text:   text,
		Entity: testEntity{name: text},
	}
}

func TestStore_InsertKeepsLocationOrder(t *testing.T) {
	var s store
	if !s.insert(mentionAt(10, 4, "@Bob")) {
		t.Fatalf("insert at 10 rejected")
	}
	if !s.insert(mentionAt(0, 4, "@Ann")) {
		t.Fatalf("insert at 0 rejected")
	}
	if !s.insert(mentionAt(5, 4, "@Eve")) {
		t.Fatalf("insert at 5 rejected")
	}

	all := s.all()
	if len(all) != 3 {
		t.Fatalf("len=%d, want 3", len(all))
	}
	for i, wantLoc := range []int{0, 5, 10} {
		if all[i].Range.Location != wantLoc {
			t.Fatalf("item %d at %d, want %d", i, all[i].Range.Location, wantLoc)
		}
	}
}

func TestStore_InsertRejectsOverlapAndZeroLength(t *testing.T) {
	var s store
	s.insert(mentionAt(5, 4, "@Eve"))

	if s.insert(mentionAt(7, 4, "@Bob")) {
		t.Fatalf("overlapping insert accepted")
	}
	if s.insert(mentionAt(3, 0, "")) {
		t.Fatalf("zero-length insert accepted")
	}
	if len(s.all()) != 1 {
		t.Fatalf("store mutated by rejected inserts")
	}
}

func TestStore_Remove(t *testing.T) {
	var s store
	m := mentionAt(5, 4, "@Eve")
	s.insert(m)
	s.insert(mentionAt(0, 4, "@Ann"))

	if !s.remove(m) {
		t.Fatalf("remove failed")
	}
	if s.remove(m) {
		t.Fatalf("second remove succeeded")
	}
	all := s.all()
	if len(all) != 1 || all[0].Text != "@Ann" {
		t.Fatalf("unexpected remaining mentions: %v", all)
	}
}

func TestStore_BeingEdited(t *testing.T) {
	var s store
	s.insert(mentionAt(5, 4, "@Eve")) // spans [5,9)

	cases := []struct {
		name string
		edit Range
		want bool
	}{
		{name: "replace inside", edit: Range{6, 2}, want: true},
		{name: "backspace last unit", edit: Range{8, 1}, want: true},
		{name: "caret insert inside", edit: Range{6, 0}, want: true},
		{name: "caret insert at start shifts instead", edit: Range{5, 0}, want: false},
		{name: "caret insert just after", edit: Range{9, 0}, want: false},
		{name: "caret insert just before", edit: Range{4, 0}, want: false},
		{name: "replace elsewhere", edit: Range{0, 3}, want: false},
		{name: "selection covering mention", edit: Range{3, 8}, want: true},
	}
	for _, tc := range cases {
		_, got := s.beingEdited(tc.edit)
		if got != tc.want {
			t.Fatalf("%s: beingEdited=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStore_AdjustShiftsAndDrops(t *testing.T) {
	var s store
	s.insert(mentionAt(0, 4, "@Ann"))  // [0,4)
	s.insert(mentionAt(10, 4, "@Bob")) // [10,14)
	s.insert(mentionAt(20, 4, "@Eve")) // [20,24)

	// Insert 3 units at 12: inside @Bob, after @Ann, before @Eve.
	dropped := s.adjust(Edit{Location: 12, OldLength: 0, NewLength: 3})
	if len(dropped) != 1 || dropped[0].Text != "@Bob" {
		t.Fatalf("dropped=%v, want @Bob", dropped)
	}

	all := s.all()
	if len(all) != 2 {
		t.Fatalf("len=%d, want 2", len(all))
	}
	if all[0].Range != (Range{0, 4}) {
		t.Fatalf("@Ann moved to %v", all[0].Range)
	}
	if all[1].Range != (Range{23, 4}) {
		t.Fatalf("@Eve at %v, want {23 4}", all[1].Range)
	}
}

func TestStore_AdjustPreservesTextAtomicity(t *testing.T) {
	// Property from the contract: after any sequence of non-overlapping
	// edits, every surviving mention's recorded text still equals the
	// buffer substring at its adjusted range.
	text := []rune("hi @Ann and @Bob bye")
	var s store
	s.insert(mentionAt(3, 4, "@Ann"))
	s.insert(mentionAt(12, 4, "@Bob"))

	edits := []struct {
		e   Edit
		ins string
	}{
		{e: Edit{Location: 0, OldLength: 2, NewLength: 5}, ins: "hello"},
		{e: Edit{Location: 10, OldLength: 0, NewLength: 1}, ins: ","}, // between mentions post-shift
		{e: Edit{Location: 21, OldLength: 1, NewLength: 0}, ins: ""},  // after both mentions
	}

	for _, step := range edits {
		next := make([]rune, 0, len(text)+step.e.Delta())
		next = append(next, text[:step.e.Location]...)
		next = append(next, []rune(step.ins)...)
		next = append(next, text[step.e.Location+step.e.OldLength:]...)
		text = next

		if dropped := s.adjust(step.e); len(dropped) != 0 {
			t.Fatalf("edit %+v dropped %v", step.e, dropped)
		}
		for _, m := range s.all() {
			got := string(text[m.Range.Location:m.Range.End()])
			if got != m.Text {
				t.Fatalf("after %+v: substring %q, mention text %q", step.e, got, m.Text)
			}
		}
	}
}
