package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortlist/internal/reorder"
)

func TestListView_MouseDragReorders(t *testing.T) {
	v := newTestView(t, "A", "B", "C", "D")
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	_, cmd := v.Update(press(0, row(0)))
	assert.Nil(t, cmd)
	assert.Equal(t, reorder.StateDragging, v.List().State())

	_, cmd = v.Update(motion(10, row(3)))
	assert.Nil(t, cmd)

	_, cmd = v.Update(release(10, row(3)))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ReorderedMsg)
	require.True(t, ok, "expected ReorderedMsg")
	assert.Equal(t, "A", msg.Item.ID)
	assert.Equal(t, 0, msg.From)
	assert.Equal(t, 2, msg.To)

	assert.Equal(t, []string{"B", "C", "A", "D"}, orderOf(t, v))
	assert.Equal(t, 2, v.Selected(), "selection follows the dropped item")
	assert.Equal(t, reorder.StateIdle, v.List().State())
}

func TestListView_DeleteHandle(t *testing.T) {
	v := newTestView(t, "A", "B", "C", "D")
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	_, cmd := v.Update(press(39, row(2)))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ItemRemovedMsg)
	require.True(t, ok, "expected ItemRemovedMsg")
	assert.Equal(t, "C", msg.Item.ID)
	assert.Equal(t, 2, msg.Index)

	assert.Equal(t, []string{"A", "B", "D"}, orderOf(t, v))
	assert.Equal(t, reorder.StateIdle, v.List().State())
}

func TestListView_BodyClickSelects(t *testing.T) {
	v := newTestView(t, "A", "B", "C")

	_, cmd := v.Update(press(10, row(2)))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, v.Selected())
	assert.Equal(t, reorder.StateIdle, v.List().State())
}

func TestListView_EscCancelsDrag(t *testing.T) {
	v := newTestView(t, "A", "B", "C")

	v.Update(press(0, row(0)))
	v.Update(motion(10, row(5)))
	require.Equal(t, reorder.StateDragging, v.List().State())

	_, cmd := v.Update(keyMsg("esc"))
	assert.Nil(t, cmd)
	assert.Equal(t, reorder.StateIdle, v.List().State())

	_, cmd = v.Update(release(10, row(5)))
	assert.Nil(t, cmd, "release after cancel commits nothing")
	assert.Equal(t, []string{"A", "B", "C"}, orderOf(t, v))
}

func TestListView_KeyboardNavigation(t *testing.T) {
	v := newTestView(t, "A", "B", "C")

	v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Selected())
	v.Update(keyMsg("j"))
	v.Update(keyMsg("j"))
	assert.Equal(t, 2, v.Selected(), "j at bottom stays at bottom")
	v.Update(keyMsg("k"))
	assert.Equal(t, 1, v.Selected())
	v.Update(keyMsg("k"))
	v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected(), "k at top stays at top")
}

func TestListView_KeyboardMove(t *testing.T) {
	v := newTestView(t, "A", "B", "C")

	_, cmd := v.Update(keyMsg("J"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ReorderedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.To)
	assert.Equal(t, []string{"B", "A", "C"}, orderOf(t, v))
	assert.Equal(t, 1, v.Selected())

	v.Update(keyMsg("shift+down"))
	assert.Equal(t, []string{"B", "C", "A"}, orderOf(t, v))

	_, cmd = v.Update(keyMsg("shift+down"))
	assert.Nil(t, cmd, "moving past the end is a no-op")

	v.Update(keyMsg("shift+up"))
	v.Update(keyMsg("K"))
	assert.Equal(t, []string{"A", "B", "C"}, orderOf(t, v))

	_, cmd = v.Update(keyMsg("K"))
	assert.Nil(t, cmd, "moving past the start is a no-op")
}

func TestListView_KeyboardDelete(t *testing.T) {
	items := testItems("A", "B")
	items[1].Deletable = false
	v, err := NewListView("Items", items, nil)
	require.NoError(t, err)

	v.Update(keyMsg("j"))
	_, cmd := v.Update(keyMsg("d"))
	assert.Nil(t, cmd, "B has no delete handle")
	assert.Equal(t, 2, v.List().Len())

	v.Update(keyMsg("k"))
	_, cmd = v.Update(keyMsg("x"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ItemRemovedMsg)
	require.True(t, ok)
	assert.Equal(t, "A", msg.Item.ID)
	assert.Equal(t, []string{"B"}, orderOf(t, v))
}

func TestListView_DuplicateItems(t *testing.T) {
	_, err := NewListView("Items", testItems("A", "A"), nil)
	require.ErrorIs(t, err, reorder.ErrDuplicateItem)
}

func TestListView_ViewShowsItemsAndHandles(t *testing.T) {
	v := newTestView(t, "A", "B")
	out := v.View()

	assert.Contains(t, out, "Items (2)")
	assert.Contains(t, out, "item A")
	assert.Contains(t, out, "item B")
	assert.Contains(t, out, GripGlyph)
	assert.Contains(t, out, DeleteGlyph)
	assert.Contains(t, out, "move up")
	assert.NotContains(t, out, PlaceholderGlyph)
}

func TestListView_ViewDuringDrag(t *testing.T) {
	v := newTestView(t, "A", "B", "C")

	v.Update(press(0, row(0)))
	v.Update(motion(10, row(2)))
	out := v.View()

	assert.Contains(t, out, "dragging")
	assert.Contains(t, out, PlaceholderGlyph)
	// The lifted item covers the row under the pointer.
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), row(2))
	assert.Contains(t, lines[row(2)], "item A")
}

func TestListView_ViewEmpty(t *testing.T) {
	v := newTestView(t)
	out := v.View()

	assert.Contains(t, out, "Items (0)")
	assert.Contains(t, out, "No items")
}

func TestListView_HelpToggle(t *testing.T) {
	v := newTestView(t, "A")
	assert.NotContains(t, v.View(), "cancel drag")

	v.Update(keyMsg("?"))
	assert.Contains(t, v.View(), "cancel drag")
}

func TestListView_ReplaceAllResetsSelection(t *testing.T) {
	v := newTestView(t, "A", "B", "C")
	v.Update(keyMsg("j"))
	v.Update(keyMsg("j"))

	require.NoError(t, v.ReplaceAll(testItems("X")))
	assert.Equal(t, 0, v.Selected())
	assert.Equal(t, []string{"X"}, orderOf(t, v))
}

func TestListView_TallItemHandles(t *testing.T) {
	items := []reorder.Item{
		{ID: "A", Content: "first\nsecond", Draggable: true, Deletable: true},
		{ID: "B", Content: "item B", Draggable: true, Deletable: true},
	}
	v, err := NewListView("Items", items, nil)
	require.NoError(t, err)

	lines := strings.Split(v.View(), "\n")
	require.Greater(t, len(lines), row(1))
	assert.Contains(t, lines[row(0)], GripGlyph)
	assert.Contains(t, lines[row(0)], DeleteGlyph)
	assert.Contains(t, lines[row(1)], GripGlyph)
	assert.NotContains(t, lines[row(1)], DeleteGlyph)

	// A press on the second row's right edge deletes nothing.
	_, cmd := v.Update(press(defaultWidth-1, row(1)))
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"A", "B"}, orderOf(t, v))
}
