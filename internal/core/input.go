package core

// Action is a discrete player intent, decoded from whatever device the
// platform reads. Games never see raw keys.
type Action int

const (
	ActionNone Action = iota

	// Piece control
	ActionLeft     // A, H, Left arrow
	ActionRight    // D, L, Right arrow
	ActionSoftDrop // S, J, Down arrow
	ActionRotate   // W, K, X, Up arrow
	ActionHardDrop // Space

	// Session control
	ActionPause   // P, Escape - toggle pause
	ActionRestart // R - start over (paused or after game over)
	ActionQuit    // Q - leave the game

	// Menu navigation
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves the active piece.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionRotate, ActionHardDrop:
		return true
	}
	return false
}

// InputFrame collects the actions triggered during one simulation tick.
// It remembers arrival order so games can apply "first intent wins".
type InputFrame struct {
	set   map[Action]bool
	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		set: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Repeated actions keep their first position.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.set == nil {
		f.set = make(map[Action]bool)
	}
	if f.set[a] {
		return
	}
	f.set[a] = true
	f.order = append(f.order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.set[a]
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	return len(f.order)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.set {
		delete(f.set, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.order {
		clone.Set(a)
	}
	return clone
}
