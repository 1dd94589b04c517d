package utils

import "github.com/mattn/go-runewidth"

// TruncateString shortens s to at most width display columns, marking the
// cut with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
