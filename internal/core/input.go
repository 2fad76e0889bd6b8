package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - slide tiles up
	ActionDown           // S, Down arrow - slide tiles down
	ActionLeft           // A, Left arrow - slide tiles left
	ActionRight          // D, Right arrow - slide tiles right
	ActionConfirm        // Enter, C - confirm / keep playing after win
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
