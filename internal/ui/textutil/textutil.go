// Package textutil provides unicode-aware text fitting for list rows.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// ANSI escape sequences take no columns.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens plain text to at most maxWidth columns, ending in an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + Ellipsis
}

// TruncateStyled is Truncate for text that may carry ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Fit pads or truncates s to exactly width columns. Styled text keeps its
// escape sequences.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := VisualWidth(s)
	if w > width {
		if ansi.Strip(s) == s {
			s = Truncate(s, width)
		} else {
			s = TruncateStyled(s, width)
		}
		w = VisualWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
