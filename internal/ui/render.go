package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sortlist/internal/reorder"
	"sortlist/internal/ui/textutil"
)

// renderRows draws the list frame: the flow first, then the lifted item on
// top of whatever rows it covers. Rows above the list origin are clipped.
func (v *ListView) renderRows() string {
	f := v.list.Frame()
	var canvas []string
	put := func(top int, block []string) {
		for i, line := range block {
			row := top - headerRows + i
			if row < 0 {
				continue
			}
			for len(canvas) <= row {
				canvas = append(canvas, "")
			}
			canvas[row] = line
		}
	}

	dragging := f.Lifted != nil
	for i, s := range f.Slots {
		switch {
		case s.Placeholder:
			put(s.Box.Y, renderPlaceholder(v.rowWidth(s.Box.W), s.Box.H))
		case !dragging && i == v.selected:
			put(s.Box.Y, renderItem(s.Item, v.rowWidth(s.Box.W), Styles.Selected))
		default:
			put(s.Box.Y, renderItem(s.Item, v.rowWidth(s.Box.W), Styles.Normal))
		}
	}
	if dragging {
		put(f.Lifted.Box.Y, renderItem(f.Lifted.Item, v.rowWidth(f.Lifted.Box.W), Styles.Lifted))
	}
	return strings.Join(canvas, "\n")
}

func (v *ListView) rowWidth(w int) int {
	if w > 0 {
		return w
	}
	return defaultWidth
}

// renderItem draws one item, one string per row. The grip is drawn on every
// row and the delete handle on the first row only.
func renderItem(it reorder.Item, width int, style lipgloss.Style) []string {
	inner := max(width-reorder.GripWidth-reorder.DeleteWidth, 1)
	lines := strings.Split(it.Content, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		grip, del := "  ", "  "
		if it.Draggable {
			grip = Styles.Grip.Render(GripGlyph) + " "
		}
		if i == 0 && it.Deletable {
			del = " " + Styles.Delete.Render(DeleteGlyph)
		}
		out[i] = grip + style.Render(textutil.Fit(line, inner)) + del
	}
	return out
}

func renderPlaceholder(width, height int) []string {
	line := Styles.Placeholder.Render(strings.Repeat(PlaceholderGlyph, width))
	out := make([]string, height)
	for i := range out {
		out[i] = line
	}
	return out
}
