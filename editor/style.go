package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asifhabib/mentions/mention"
)

// Style controls the component's rendering.
type Style struct {
	Text        lipgloss.Style
	Mention     lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	PopupBorder   lipgloss.Style
	PopupItem     lipgloss.Style
	PopupSelected lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Mention:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:      lipgloss.NewStyle().Reverse(true),

		PopupBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1),
		PopupItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		PopupSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true),
	}
}

// styleForAttributes maps an attribute set from the mention listener onto a
// render style using the package's built-in "mention" key convention.
func (s Style) styleForAttributes(attrs mention.Attributes) lipgloss.Style {
	if v, ok := attrs["mention"]; ok {
		if b, ok := v.(bool); ok && b {
			return s.Mention
		}
	}
	return s.Text
}
