package reorder

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ReorderEvent describes a committed reorder. Order is a copy of the new
// committed order.
type ReorderEvent struct {
	Item  Item
	From  int
	To    int
	Order []Item
}

// Moved reports whether the item changed position.
func (e ReorderEvent) Moved() bool { return e.From != e.To }

// RemoveEvent describes an item removed through its delete handle.
type RemoveEvent struct {
	Item  Item
	Index int
}

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger used for drag and removal diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTracer sets the tracer that records one span per drag gesture.
func WithTracer(tracer trace.Tracer) Option {
	return func(l *List) {
		if tracer != nil {
			l.tracer = tracer
		}
	}
}

// WithOnReorder registers a listener called after every committed drag and
// every successful Move. Listeners run in registration order.
func WithOnReorder(fn func(ReorderEvent)) Option {
	return func(l *List) {
		if fn != nil {
			l.onReorder = append(l.onReorder, fn)
		}
	}
}

// WithOnRemove registers a listener called when an item is removed through
// its delete handle. Programmatic removals return the item to the caller
// instead.
func WithOnRemove(fn func(RemoveEvent)) Option {
	return func(l *List) {
		if fn != nil {
			l.onRemove = append(l.onRemove, fn)
		}
	}
}
