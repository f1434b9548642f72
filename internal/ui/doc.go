// Package ui renders a reorder.List as a Bubble Tea program.
//
// Core pieces:
//   - View: a screen or region with its own init, update and view (Elm-style)
//   - ListView: the reorderable list, fed by mouse and keyboard
//   - AppModel: root model; owns the list, the modal overlays and the status line
//   - Overlay: modal views such as the clear confirmation
//
// Mouse reporting is expected in cell-motion mode, so motion events only
// arrive while a button is held. That is exactly the window in which a drag
// needs them.
package ui
