// Package grapheme wraps the uniseg segmentation primitives the editor
// package renders with.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the monospace cell width of text, ignoring ANSI state.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Join concatenates grapheme clusters back into a string.
func Join(clusters []string) string {
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}
