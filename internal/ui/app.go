package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppModel is the root model. It routes input to the open modal, if any,
// and otherwise to the list, and keeps a one-line status of the last change.
type AppModel struct {
	List     *ListView
	Overlays OverlayStack
	Status   string

	keys   keyMap
	width  int
	height int
	logger *zap.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model around list.
func NewAppModel(list *ListView, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppModel{
		List:   list,
		keys:   defaultKeyMap(),
		logger: logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.List.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case ReorderedMsg:
		if msg.Moved() {
			a.Status = fmt.Sprintf("Moved %s: %d → %d", msg.Item.ID, msg.From+1, msg.To+1)
		} else {
			a.Status = fmt.Sprintf("%s stayed at %d", msg.Item.ID, msg.To+1)
		}
		return a, nil
	case ItemRemovedMsg:
		a.Status = fmt.Sprintf("Deleted %s", msg.Item.ID)
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case ClearListMsg:
		a.Overlays.Pop()
		n := a.List.List().Len()
		if err := a.List.ReplaceAll(nil); err != nil {
			a.logger.Warn("clear list", zap.Error(err))
			a.Status = "Clear failed: " + err.Error()
			return a, nil
		}
		a.logger.Info("list cleared", zap.Int("removed", n))
		a.Status = fmt.Sprintf("Cleared %d item(s)", n)
		return a, nil
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	case tea.KeyMsg:
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.List.List().CancelDrag()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Clear):
			// The modal swallows mouse input, so the release would never arrive.
			a.List.List().CancelDrag()
			a.Overlays.Push(NewClearListConfirmModal(a.List.Title, a.List.List().Len()))
			return a, nil
		}
	}

	v, cmd := a.List.Update(msg)
	if lv, ok := v.(*ListView); ok {
		a.List = lv
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View())
		}
		return top.View()
	}
	base := a.List.View()
	if a.Status != "" {
		base += "\n" + Styles.Status.Render(a.Status)
	}
	return base
}
