package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, k - move crosshair up
	ActionDown              // Down arrow, j - move crosshair down
	ActionLeft              // Left arrow, h - move crosshair left
	ActionRight             // Right arrow, l - move crosshair right
	ActionToggleAim         // Space, Tab - toggle cut orientation
	ActionCut               // Enter, c - start a cut at the crosshair
	ActionNextLevel         // n, Enter after a level clear
	ActionDifficulty        // d - cycle difficulty and start a new run
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - start a new run
	ActionQuit              // Q, Ctrl+C - exit game/session
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
	case ActionToggleAim:
		return "ToggleAim"
	case ActionCut:
		return "Cut"
	case ActionNextLevel:
		return "NextLevel"
	case ActionDifficulty:
		return "Difficulty"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
