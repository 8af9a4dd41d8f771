package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. Actions are applied by the owning loop as soon as they arrive.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, click - start a jump arc
	ActionRestart        // R - restart from level 1
	ActionAdvance        // N, Enter - continue to the next level
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
