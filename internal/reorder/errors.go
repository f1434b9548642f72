package reorder

import "errors"

var (
	// ErrInvalidIndex is returned when an index is outside the committed order.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrNotFound is returned when no item has the requested identity.
	ErrNotFound = errors.New("item not found")
	// ErrDisposed is returned by every operation after Destroy.
	ErrDisposed = errors.New("list disposed")
	// ErrDuplicateItem is returned when an identity is already in the list.
	ErrDuplicateItem = errors.New("duplicate item")
)
