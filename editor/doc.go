// Package editor provides a Bubble Tea input component backed by the
// mention package.
//
// The component owns a styled text field that implements mention.TextHost,
// routes every keystroke through the mention listener before mutating the
// buffer, and renders a candidate picker popup while a mention context is
// active.
package editor
