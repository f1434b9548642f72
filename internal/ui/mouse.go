package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sortlist/internal/reorder"
)

// pointerEvent translates a terminal mouse event into a list pointer event.
// Only the left button drives the list; any release ends a gesture since some
// terminals do not report which button was released.
func pointerEvent(msg tea.MouseMsg) (reorder.PointerEvent, bool) {
	ev := reorder.PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = reorder.PointerDown
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = reorder.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = reorder.PointerUp
	default:
		return ev, false
	}
	return ev, true
}
