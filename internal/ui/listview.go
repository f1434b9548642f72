package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sortlist/internal/reorder"
)

// headerRows is the number of rows above the first item: title and a blank line.
const headerRows = 2

// defaultWidth is used until the first WindowSizeMsg (and in tests).
const defaultWidth = 60

// ListView shows a reorder.List and feeds it mouse and keyboard input.
type ListView struct {
	Title string

	list     *reorder.List
	keys     keyMap
	help     help.Model
	selected int
	logger   *zap.Logger

	// Messages produced by list callbacks during the current Update.
	pending []tea.Msg
}

// Ensure ListView implements View.
var _ View = (*ListView)(nil)

// NewListView creates a view over a new list holding items. The list is
// mounted below the header at a default width and remounted on every
// WindowSizeMsg.
func NewListView(title string, items []reorder.Item, logger *zap.Logger, opts ...reorder.Option) (*ListView, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &ListView{
		Title:  title,
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	all := make([]reorder.Option, 0, len(opts)+3)
	all = append(all, reorder.WithLogger(logger))
	all = append(all, opts...)
	all = append(all,
		reorder.WithOnReorder(v.onReorder),
		reorder.WithOnRemove(v.onRemove),
	)
	l, err := reorder.New(items, all...)
	if err != nil {
		return nil, fmt.Errorf("new list: %w", err)
	}
	v.list = l
	if err := l.Mount(0, headerRows, defaultWidth); err != nil {
		return nil, err
	}
	return v, nil
}

// List returns the underlying list.
func (v *ListView) List() *reorder.List {
	return v.list
}

// Selected returns the index of the keyboard selection.
func (v *ListView) Selected() int {
	return v.selected
}

// Init implements View.
func (v *ListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		if err := v.list.Mount(0, headerRows, msg.Width); err != nil {
			v.logger.Debug("mount failed", zap.Error(err))
		}
		return v, nil
	case tea.MouseMsg:
		v.handleMouse(msg)
	case tea.KeyMsg:
		v.handleKey(msg)
	}
	return v, v.flush()
}

func (v *ListView) handleMouse(msg tea.MouseMsg) {
	ev, ok := pointerEvent(msg)
	if !ok {
		return
	}
	if v.list.HandlePointer(ev) {
		if f := v.list.Frame(); f.Lifted != nil && ev.Kind == reorder.PointerDown {
			v.selected = v.list.Index(f.Lifted.Item.ID)
		}
		return
	}
	// A press on an item body only selects it.
	if ev.Kind == reorder.PointerDown {
		for i, s := range v.list.Frame().Slots {
			if s.Box.Contains(ev.X, ev.Y) {
				v.selected = i
				return
			}
		}
	}
}

func (v *ListView) handleKey(msg tea.KeyMsg) {
	n := v.list.Len()
	switch {
	case key.Matches(msg, v.keys.Cancel):
		v.list.CancelDrag()
	case key.Matches(msg, v.keys.Up):
		v.selectIndex(v.selected - 1)
	case key.Matches(msg, v.keys.Down):
		v.selectIndex(v.selected + 1)
	case key.Matches(msg, v.keys.MoveUp):
		if v.selected > 0 && v.selected < n {
			v.moveSelected(v.selected - 1)
		}
	case key.Matches(msg, v.keys.MoveDown):
		if v.selected < n-1 {
			v.moveSelected(v.selected + 1)
		}
	case key.Matches(msg, v.keys.Delete):
		v.deleteSelected()
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	}
}

func (v *ListView) moveSelected(to int) {
	if err := v.list.Move(v.selected, to); err != nil {
		v.logger.Debug("move failed", zap.Error(err))
	}
}

func (v *ListView) deleteSelected() {
	items, err := v.list.Items()
	if err != nil || v.selected >= len(items) || !items[v.selected].Deletable {
		return
	}
	i := v.selected
	it, err := v.list.RemoveAt(i)
	if err != nil {
		v.logger.Debug("delete failed", zap.Error(err))
		return
	}
	v.onRemove(reorder.RemoveEvent{Item: it, Index: i})
}

func (v *ListView) selectIndex(i int) {
	n := v.list.Len()
	if n == 0 {
		v.selected = 0
		return
	}
	v.selected = min(max(i, 0), n-1)
}

func (v *ListView) onReorder(ev reorder.ReorderEvent) {
	v.selected = ev.To
	v.pending = append(v.pending, ReorderedMsg{ReorderEvent: ev})
}

func (v *ListView) onRemove(ev reorder.RemoveEvent) {
	v.selectIndex(v.selected)
	v.pending = append(v.pending, ItemRemovedMsg{Item: ev.Item, Index: ev.Index})
}

// flush turns the queued callback messages into a command.
func (v *ListView) flush() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(v.pending))
	for i, msg := range v.pending {
		cmds[i] = func() tea.Msg { return msg }
	}
	v.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// ReplaceAll swaps the list contents, cancelling any drag.
func (v *ListView) ReplaceAll(items []reorder.Item) error {
	if err := v.list.ReplaceAll(items); err != nil {
		return err
	}
	v.selectIndex(0)
	return nil
}

// View implements View.
func (v *ListView) View() string {
	var b strings.Builder
	title := fmt.Sprintf("%s (%d)", v.Title, v.list.Len())
	if v.list.State() == reorder.StateDragging {
		title += " " + Styles.Hint.Render("dragging")
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")

	if v.list.Len() == 0 {
		b.WriteString(Styles.Empty.Render("No items") + "\n")
	} else {
		b.WriteString(v.renderRows() + "\n")
	}
	b.WriteString("\n" + v.help.View(v.keys))
	return b.String()
}
