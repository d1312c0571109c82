// Package mention implements trigger-driven mention tracking over an
// editable text buffer.
//
// A Listener watches a host text widget through the TextHost interface,
// detects when the caret sits inside a candidate mention (a trigger such as
// "@" preceded by whitespace or start of buffer), debounces the resulting
// show-candidates callbacks, and keeps every committed mention's span
// consistent as the surrounding text is edited.
//
// Offsets are 0-based code-unit indices, where a code unit is one Unicode
// code point (rune). Ranges are half-open: [Location, Location+Length).
package mention
