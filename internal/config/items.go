package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sortlist/internal/reorder"
)

// ErrMissingID is returned for an item entry without an id.
var ErrMissingID = errors.New("item has no id")

// itemEntry is one entry of an item file. Handles default to enabled.
type itemEntry struct {
	ID        string `yaml:"id"`
	Content   string `yaml:"content"`
	Draggable *bool  `yaml:"draggable,omitempty"`
	Deletable *bool  `yaml:"deletable,omitempty"`
}

// ReadItems parses a YAML sequence of items. Content defaults to the id.
func ReadItems(r io.Reader) ([]reorder.Item, error) {
	var entries []itemEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]reorder.Item, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingID)
		}
		it := reorder.Item{
			ID:        e.ID,
			Content:   e.Content,
			Draggable: e.Draggable == nil || *e.Draggable,
			Deletable: e.Deletable == nil || *e.Deletable,
		}
		if it.Content == "" {
			it.Content = e.ID
		}
		items = append(items, it)
	}
	return items, nil
}

// LoadItems reads an item file from disk.
func LoadItems(path string) ([]reorder.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open items: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// WriteItems writes items as YAML in the same format ReadItems accepts.
func WriteItems(w io.Writer, items []reorder.Item) error {
	entries := make([]itemEntry, len(items))
	for i, it := range items {
		draggable, deletable := it.Draggable, it.Deletable
		entries[i] = itemEntry{
			ID:        it.ID,
			Content:   it.Content,
			Draggable: &draggable,
			Deletable: &deletable,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	return enc.Close()
}

// DefaultItems is the list shown when no item file is given.
func DefaultItems() []reorder.Item {
	return []reorder.Item{
		{ID: "backlog", Content: "Groom the backlog", Draggable: true, Deletable: true},
		{ID: "review", Content: "Review open pull requests", Draggable: true, Deletable: true},
		{ID: "release", Content: "Cut the release branch\n  (needs sign-off)", Draggable: true, Deletable: false},
		{ID: "docs", Content: "Update the changelog", Draggable: true, Deletable: true},
		{ID: "pinned", Content: "Standup notes", Draggable: false, Deletable: false},
	}
}
