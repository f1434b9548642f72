// Package reorder implements a reorderable list driven by pointer gestures.
//
// A List owns an ordered sequence of Items (the committed order) and a
// rectangular region of terminal cells it is mounted on. Pressing an item's
// grab handle starts a drag: the item is lifted out of the flow, a placeholder
// of the same height takes its slot, and pointer motion moves the placeholder
// in front of the first item whose midpoint lies at or below the pointer.
// Releasing the pointer commits the new order. Pressing a delete handle
// removes the item immediately.
//
// The committed order only changes at defined commit points (a released drag
// or an explicit mutation). Rendering reads a Frame, which is a projection of
// the committed order plus the transient drag state.
//
// A List is not safe for concurrent use; it is meant to be driven from a
// single event loop such as a Bubble Tea program.
package reorder
