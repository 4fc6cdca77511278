package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateCleared
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// Simulating returns true while steps should be fed to the session.
// A cleared level keeps stepping to run the victory timer.
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateCleared
}

// TogglePause switches between Playing and Paused; other states are kept
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
