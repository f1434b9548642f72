package reorder

// Width in cells of the grab handle at the left edge of a draggable item and
// of the delete handle at the right edge of a deletable item.
const (
	GripWidth   = 2
	DeleteWidth = 2
)

// Rect is a box of terminal cells. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom returns the first row below r.
func (r Rect) Bottom() int { return r.Y + r.H }

// midpointAtOrBelow reports whether the vertical midpoint of r is at or below row y.
// Rows are compared doubled so odd heights need no fractions.
func (r Rect) midpointAtOrBelow(y int) bool {
	return 2*y <= 2*r.Y+r.H
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer event in screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// affordance identifies the region of an item that was hit.
type affordance int

const (
	hitBody affordance = iota
	hitGrip
	hitDelete
)

// hitAffordance classifies a point inside box for item it. The grip runs
// down every row of the item; the delete handle sits on the first row only.
// The delete handle wins when the box is too narrow for both.
func hitAffordance(it Item, box Rect, x, y int) affordance {
	if it.Deletable && y == box.Y && x >= box.X+box.W-DeleteWidth {
		return hitDelete
	}
	if it.Draggable && x < box.X+GripWidth {
		return hitGrip
	}
	return hitBody
}
