package editor

import (
	"strings"

	"github.com/asifhabib/mentions/internal/grapheme"
)

// View renders the field contents with the attribute styling the listener
// applied, a cursor cell, and the placeholder when empty.
func (m Model) View() string {
	text := []rune(m.field.Text())
	caret := m.field.Selection().Location

	if len(text) == 0 {
		if m.cfg.Placeholder == "" {
			return m.renderCursorCell()
		}
		return m.renderCursorCell() + m.cfg.Style.Placeholder.Render(m.cfg.Placeholder)
	}

	start, end := m.visibleWindow(len(text), caret)

	var sb strings.Builder
	for i := start; i < end; i++ {
		cell := string(text[i])
		if cell == "\n" {
			sb.WriteString("\n")
			continue
		}
		style := m.cfg.Style.styleForAttributes(m.field.attributesAt(i))
		if m.focused && i == caret {
			style = m.cfg.Style.Cursor
		}
		sb.WriteString(style.Render(cell))
	}
	if m.focused && caret >= end {
		sb.WriteString(m.renderCursorCell())
	}
	return sb.String()
}

// PopupView renders the candidate picker, or "" when hidden. Hosts place it
// themselves, e.g. with an overlay layer.
func (m Model) PopupView() string {
	if !m.PopupOpen() {
		return ""
	}
	return m.ui.popup.View(m.cfg.Style)
}

func (m Model) renderCursorCell() string {
	if !m.focused {
		return ""
	}
	return m.cfg.Style.Cursor.Render(" ")
}

// visibleWindow keeps the caret (or the most recent scroll-into-view
// request) inside the configured width.
func (m Model) visibleWindow(textLen, caret int) (start, end int) {
	width := m.cfg.Width
	if width <= 0 || textLen < width {
		return 0, textLen
	}

	target := caret
	if m.field.hasScrollTo {
		target = m.field.scrollTo.Location
	}
	if target > textLen {
		target = textLen
	}

	start = target - width + 1
	if start < 0 {
		start = 0
	}
	end = start + width
	if end > textLen {
		end = textLen
	}
	return start, end
}

// Width returns the rendered cell width of the field's current value.
func (m Model) Width() int {
	return grapheme.Width(m.field.Text())
}
