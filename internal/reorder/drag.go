package reorder

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// dragSession is the transient state of one drag gesture.
type dragSession struct {
	item Item
	from int // committed index at drag start

	offsetY int  // pointer row relative to the item's top at drag start
	box     Rect // pre-drag box; the lifted item keeps its X, W and H
	top     int  // current lifted top

	// Placeholder position, counted among the non-dragged items.
	slot int

	span trace.Span
}

// Slot is one row group of the visual flow. For the placeholder, Item is the
// dragged item whose landing position it marks.
type Slot struct {
	Item        Item
	Placeholder bool
	Box         Rect
}

// Lifted is the dragged item, drawn on top of the flow.
type Lifted struct {
	Item Item
	Box  Rect
}

// Frame is what should be drawn: the flow, and the lifted item while dragging.
type Frame struct {
	Slots  []Slot
	Lifted *Lifted
}

// Frame returns the current render plan. Outside a drag, the slots are the
// committed order.
func (l *List) Frame() Frame {
	if l.disposed {
		return Frame{}
	}
	f := Frame{Slots: l.flow()}
	if s := l.drag; s != nil {
		f.Lifted = &Lifted{
			Item: s.item,
			Box:  Rect{X: s.box.X, Y: s.top, W: s.box.W, H: s.box.H},
		}
	}
	return f
}

// Bounds returns the box of the item with the given ID in the current frame.
func (l *List) Bounds(id string) (Rect, bool) {
	f := l.Frame()
	if f.Lifted != nil && f.Lifted.Item.ID == id {
		return f.Lifted.Box, true
	}
	for _, s := range f.Slots {
		if !s.Placeholder && s.Item.ID == id {
			return s.Box, true
		}
	}
	return Rect{}, false
}

// HandlePointer feeds one pointer event to the list and reports whether the
// list consumed it. Events are ignored until the list is mounted and after
// it is destroyed.
//
// While a drag is active the session owns the pointer: a second press is
// consumed and ignored. Move and release events outside a drag are ignored.
func (l *List) HandlePointer(ev PointerEvent) bool {
	if l.disposed || !l.mounted {
		return false
	}
	switch ev.Kind {
	case PointerDown:
		if l.drag != nil {
			l.logger.Debug("press ignored during drag", zap.String("item", l.drag.item.ID))
			return true
		}
		return l.press(ev)
	case PointerMove:
		if l.drag == nil {
			return false
		}
		l.dragMove(ev.Y)
		return true
	case PointerUp:
		if l.drag == nil {
			return false
		}
		l.dragEnd()
		return true
	}
	return false
}

// CancelDrag discards the drag in progress without committing it.
// Returns false if no drag was active.
func (l *List) CancelDrag() bool {
	if l.disposed {
		return false
	}
	return l.cancelDrag("cancel")
}

func (l *List) press(ev PointerEvent) bool {
	for i, s := range l.flow() {
		if !s.Box.Contains(ev.X, ev.Y) {
			continue
		}
		switch hitAffordance(s.Item, s.Box, ev.X, ev.Y) {
		case hitDelete:
			it := l.removeAt(i)
			l.logger.Debug("item deleted", zap.String("item", it.ID), zap.Int("index", i))
			l.emitRemove(RemoveEvent{Item: it, Index: i})
			return true
		case hitGrip:
			l.dragStart(i, s.Box, ev.Y)
			return true
		}
		return false
	}
	return false
}

func (l *List) dragStart(i int, box Rect, y int) {
	it := l.items[i]
	_, span := l.tracer.Start(context.Background(), "reorder.drag",
		trace.WithAttributes(
			attribute.String("sortlist.item.id", it.ID),
			attribute.Int("sortlist.from", i),
		),
	)
	l.drag = &dragSession{
		item:    it,
		from:    i,
		offsetY: y - box.Y,
		box:     box,
		top:     box.Y,
		slot:    i,
		span:    span,
	}
	l.logger.Debug("drag started", zap.String("item", it.ID), zap.Int("from", i))
}

// dragMove moves the lifted item with the pointer and puts the placeholder in
// front of the first non-dragged item whose midpoint is at or below y, or at
// the end if there is none.
func (l *List) dragMove(y int) {
	s := l.drag
	s.top = y - s.offsetY

	target, k := -1, 0
	for _, slot := range l.flow() {
		if slot.Placeholder {
			continue
		}
		if slot.Box.midpointAtOrBelow(y) {
			target = k
			break
		}
		k++
	}
	if target < 0 {
		target = len(l.items) - 1
	}
	s.slot = target
}

// dragEnd commits the placeholder position as the dragged item's new index.
func (l *List) dragEnd() {
	s := l.drag
	l.drag = nil

	order := slices.Delete(slices.Clone(l.items), s.from, s.from+1)
	l.items = slices.Insert(order, s.slot, s.item)

	s.span.SetAttributes(attribute.Int("sortlist.to", s.slot))
	s.span.End()
	l.logger.Debug("drag committed",
		zap.String("item", s.item.ID),
		zap.Int("from", s.from),
		zap.Int("to", s.slot),
	)
	l.emitReorder(ReorderEvent{Item: s.item, From: s.from, To: s.slot})
}

func (l *List) cancelDrag(reason string) bool {
	s := l.drag
	if s == nil {
		return false
	}
	l.drag = nil
	s.span.SetAttributes(
		attribute.Bool("sortlist.cancelled", true),
		attribute.String("sortlist.cancel_reason", reason),
	)
	s.span.End()
	l.logger.Debug("drag cancelled", zap.String("item", s.item.ID), zap.String("reason", reason))
	return true
}

// flow lays out the visual sequence from the origin down. While dragging,
// the dragged item is left out and the placeholder sits at its slot.
func (l *List) flow() []Slot {
	slots := make([]Slot, 0, len(l.items)+1)
	y := l.origin.Y
	add := func(it Item, placeholder bool) {
		h := it.Height()
		slots = append(slots, Slot{
			Item:        it,
			Placeholder: placeholder,
			Box:         Rect{X: l.origin.X, Y: y, W: l.origin.W, H: h},
		})
		y += h
	}

	s := l.drag
	if s == nil {
		for _, it := range l.items {
			add(it, false)
		}
		return slots
	}
	k := 0
	for i, it := range l.items {
		if i == s.from {
			continue
		}
		if k == s.slot {
			add(s.item, true)
		}
		add(it, false)
		k++
	}
	if s.slot == k {
		add(s.item, true)
	}
	return slots
}
