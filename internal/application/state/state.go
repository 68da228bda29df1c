package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateLevelClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelClear:
		return "LevelClear"
	default:
		return "Unknown"
	}
}

// Finished reports whether the session has ended
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateLevelClear
}
