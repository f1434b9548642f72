package ui

import "sortlist/internal/reorder"

// ReorderedMsg is sent after the list commits a new order.
type ReorderedMsg struct {
	reorder.ReorderEvent
}

// ItemRemovedMsg is sent after an item is deleted from the list by the user.
type ItemRemovedMsg struct {
	Item  reorder.Item
	Index int
}

// ClearListMsg is sent when the user confirms clearing the list.
type ClearListMsg struct{}

// DismissModalMsg is sent when the topmost modal should close.
type DismissModalMsg struct{}
