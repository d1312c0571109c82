package editor

import (
	"strings"

	"github.com/asifhabib/mentions/mention"
	"github.com/asifhabib/mentions/internal/grapheme"
)

const (
	defaultPopupMaxVisible = 6
	defaultPopupWidth      = 32
)

// Candidate is one pickable entry in the mention popup.
type Candidate struct {
	Label  string
	Detail string
	Entity mention.Entity
}

// Popup is the windowed candidate list rendered while a mention context is
// active.
type Popup struct {
	candidates []Candidate
	selected   int
	maxVisible int
	width      int
}

func NewPopup() Popup {
	return Popup{maxVisible: defaultPopupMaxVisible, width: defaultPopupWidth}
}

func (p *Popup) SetCandidates(candidates []Candidate) {
	p.candidates = candidates
	p.selected = 0
}

func (p *Popup) Clear() {
	p.candidates = nil
	p.selected = 0
}

func (p *Popup) HasCandidates() bool { return len(p.candidates) > 0 }

func (p *Popup) Next() {
	if len(p.candidates) == 0 {
		return
	}
	p.selected = (p.selected + 1) % len(p.candidates)
}

func (p *Popup) Prev() {
	if len(p.candidates) == 0 {
		return
	}
	p.selected--
	if p.selected < 0 {
		p.selected = len(p.candidates) - 1
	}
}

func (p *Popup) Selected() (Candidate, bool) {
	if p.selected < 0 || p.selected >= len(p.candidates) {
		return Candidate{}, false
	}
	return p.candidates[p.selected], true
}

func (p *Popup) SetMaxVisible(rows int) {
	if rows > 0 {
		p.maxVisible = rows
	}
}

func (p *Popup) SetWidth(width int) {
	if width > 0 {
		p.width = width
	}
}

// View renders the popup box. The selected row is kept inside the visible
// window, centered when the list is long enough to scroll.
func (p Popup) View(style Style) string {
	if len(p.candidates) == 0 {
		return ""
	}

	start := 0
	end := len(p.candidates)
	if len(p.candidates) > p.maxVisible {
		start = p.selected - p.maxVisible/2
		if start < 0 {
			start = 0
		}
		end = start + p.maxVisible
		if end > len(p.candidates) {
			end = len(p.candidates)
			start = end - p.maxVisible
		}
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, p.renderRow(p.candidates[i], i == p.selected, style))
	}
	return style.PopupBorder.Render(strings.Join(rows, "\n"))
}

func (p Popup) renderRow(c Candidate, selected bool, style Style) string {
	rowStyle := style.PopupItem
	marker := "  "
	if selected {
		rowStyle = style.PopupSelected
		marker = "> "
	}

	label := truncate(c.Label, p.width-len(marker))
	row := marker + label
	if c.Detail != "" {
		detail := truncate(c.Detail, p.width-grapheme.Width(row)-1)
		if detail != "" {
			row += " " + detail
		}
	}
	return rowStyle.Render(padTo(row, p.width))
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if grapheme.Width(s) <= max {
		return s
	}
	clusters := grapheme.Split(s)
	width := 0
	var sb strings.Builder
	for _, c := range clusters {
		w := grapheme.Width(c)
		if width+w > max-1 {
			break
		}
		sb.WriteString(c)
		width += w
	}
	return sb.String() + "…"
}

func padTo(s string, width int) string {
	if gap := width - grapheme.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
