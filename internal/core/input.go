package core

// Action represents a semantic user action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionSetMode         // 1..9 - select a mode directly
	ActionNextMode        // Tab - next mode
	ActionPrevMode        // Shift+Tab - previous mode
	ActionPause           // P - stop/resume the frame loop
	ActionSnapshot        // Ctrl+S - save the current frame as PNG
	ActionHelp            // ? - toggle full help
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSetMode:
		return "SetMode"
	case ActionNextMode:
		return "NextMode"
	case ActionPrevMode:
		return "PrevMode"
	case ActionPause:
		return "Pause"
	case ActionSnapshot:
		return "Snapshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
