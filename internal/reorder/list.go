package reorder

import (
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// List is an ordered, reorderable sequence of Items.
type List struct {
	items []Item
	ids   map[string]struct{}

	// Mounted region. Pointer events are ignored until mounted.
	mounted bool
	origin  Rect

	// nil while Idle.
	drag     *dragSession
	disposed bool

	logger    *zap.Logger
	tracer    trace.Tracer
	onReorder []func(ReorderEvent)
	onRemove  []func(RemoveEvent)
}

// New creates a List holding items in the given order.
// Returns ErrDuplicateItem if two items share an ID.
func New(items []Item, opts ...Option) (*List, error) {
	ids, err := indexByID(items)
	if err != nil {
		return nil, err
	}
	l := &List{
		items:  slices.Clone(items),
		ids:    ids,
		logger: zap.NewNop(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Mount binds the list to the region whose top-left cell is (x, y) and which
// is width cells wide. An active drag is carried over to the new region.
func (l *List) Mount(x, y, width int) error {
	if l.disposed {
		return ErrDisposed
	}
	origin := Rect{X: x, Y: y, W: max(width, 0)}
	if s := l.drag; s != nil {
		dy := origin.Y - l.origin.Y
		s.box = Rect{X: origin.X, Y: s.box.Y + dy, W: origin.W, H: s.box.H}
		s.top += dy
	}
	l.mounted = true
	l.origin = origin
	return nil
}

// State returns the current drag state.
func (l *List) State() State {
	switch {
	case l.disposed:
		return StateDisposed
	case l.drag != nil:
		return StateDragging
	default:
		return StateIdle
	}
}

// Items returns a copy of the committed order.
func (l *List) Items() ([]Item, error) {
	if l.disposed {
		return nil, ErrDisposed
	}
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out, nil
}

// Len returns the number of committed items, or 0 once disposed.
func (l *List) Len() int {
	return len(l.items)
}

// Index returns the committed index of the item with the given ID, or -1.
func (l *List) Index(id string) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
}

// Contains reports whether an item with the given ID is in the list.
func (l *List) Contains(id string) bool {
	_, ok := l.ids[id]
	return ok
}

// InsertAt inserts item so that it ends up at index.
// Index must be within [0, Len()]; out-of-range indexes are rejected, not clamped.
func (l *List) InsertAt(item Item, index int) error {
	if l.disposed {
		return ErrDisposed
	}
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("insert %q at %d of %d: %w", item.ID, index, len(l.items), ErrInvalidIndex)
	}
	if l.Contains(item.ID) {
		return fmt.Errorf("insert %q: %w", item.ID, ErrDuplicateItem)
	}
	l.cancelDrag("insert")
	l.items = slices.Insert(l.items, index, item)
	l.ids[item.ID] = struct{}{}
	return nil
}

// Append inserts item at the end of the list.
func (l *List) Append(item Item) error {
	return l.InsertAt(item, len(l.items))
}

// RemoveAt removes and returns the item at index.
func (l *List) RemoveAt(index int) (Item, error) {
	if l.disposed {
		return Item{}, ErrDisposed
	}
	if index < 0 || index >= len(l.items) {
		return Item{}, fmt.Errorf("remove at %d of %d: %w", index, len(l.items), ErrInvalidIndex)
	}
	l.cancelDrag("remove")
	return l.removeAt(index), nil
}

// Remove removes and returns the item with the given ID.
func (l *List) Remove(id string) (Item, error) {
	if l.disposed {
		return Item{}, ErrDisposed
	}
	i := l.Index(id)
	if i < 0 {
		return Item{}, fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}
	l.cancelDrag("remove")
	return l.removeAt(i), nil
}

// Move moves the item at from so that it ends up at index to.
// Both indexes must address committed items.
func (l *List) Move(from, to int) error {
	if l.disposed {
		return ErrDisposed
	}
	n := len(l.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d to %d of %d: %w", from, to, n, ErrInvalidIndex)
	}
	l.cancelDrag("move")
	it := l.items[from]
	l.items = slices.Insert(slices.Delete(l.items, from, from+1), to, it)
	l.logger.Debug("item moved", zap.String("item", it.ID), zap.Int("from", from), zap.Int("to", to))
	l.emitReorder(ReorderEvent{Item: it, From: from, To: to})
	return nil
}

// ReplaceAll discards the current order, and any drag in progress, and
// installs items. On error the list is left unchanged.
func (l *List) ReplaceAll(items []Item) error {
	if l.disposed {
		return ErrDisposed
	}
	ids, err := indexByID(items)
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	l.cancelDrag("replace")
	l.items = slices.Clone(items)
	l.ids = ids
	return nil
}

// Clear removes every item.
func (l *List) Clear() error {
	return l.ReplaceAll(nil)
}

// Destroy cancels any drag in progress and releases the mounted region.
// Every later operation fails with ErrDisposed. Destroy is idempotent.
func (l *List) Destroy() {
	if l.disposed {
		return
	}
	l.cancelDrag("destroy")
	l.items = nil
	l.ids = nil
	l.mounted = false
	l.origin = Rect{}
	l.onReorder = nil
	l.onRemove = nil
	l.disposed = true
	l.logger.Debug("list destroyed")
}

func (l *List) removeAt(i int) Item {
	it := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	delete(l.ids, it.ID)
	return it
}

func (l *List) emitReorder(ev ReorderEvent) {
	if len(l.onReorder) == 0 {
		return
	}
	ev.Order = slices.Clone(l.items)
	for _, fn := range l.onReorder {
		fn(ev)
	}
}

func (l *List) emitRemove(ev RemoveEvent) {
	for _, fn := range l.onRemove {
		fn(ev)
	}
}
