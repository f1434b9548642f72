package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"sortlist/internal/reorder"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyShiftUp}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// row returns the screen row of the i-th single-row item.
func row(i int) int { return headerRows + i }

func testItems(ids ...string) []reorder.Item {
	out := make([]reorder.Item, len(ids))
	for i, id := range ids {
		out[i] = reorder.Item{ID: id, Content: "item " + id, Draggable: true, Deletable: true}
	}
	return out
}

func newTestView(t *testing.T, ids ...string) *ListView {
	t.Helper()
	v, err := NewListView("Items", testItems(ids...), nil)
	require.NoError(t, err)
	return v
}

func orderOf(t *testing.T, v *ListView) []string {
	t.Helper()
	items, err := v.List().Items()
	require.NoError(t, err)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
