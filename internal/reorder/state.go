package reorder

// State is the drag state of a List.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateDisposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}
