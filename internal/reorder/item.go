package reorder

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Item is one entry of a List. ID must be unique within the list.
type Item struct {
	ID        string
	Content   string
	Draggable bool
	Deletable bool
}

// Height returns the number of rows the item occupies.
func (it Item) Height() int {
	if h := lipgloss.Height(it.Content); h > 1 {
		return h
	}
	return 1
}

func (it Item) String() string { return it.ID }

// indexByID builds the membership index for items, rejecting duplicates.
func indexByID(items []Item) (map[string]struct{}, error) {
	ids := make(map[string]struct{}, len(items))
	for i, it := range items {
		if _, ok := ids[it.ID]; ok {
			return nil, fmt.Errorf("item %q at index %d: %w", it.ID, i, ErrDuplicateItem)
		}
		ids[it.ID] = struct{}{}
	}
	return ids, nil
}
