// Package state defines the simulation's top-level modes.
package state

// Mode is the top-level phase of the simulation
type Mode int

const (
	ModeLoading Mode = iota
	ModeInitial
	ModePlay
	ModeGameOver
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeInitial:
		return "Initial"
	case ModePlay:
		return "Play"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Ticks reports whether the simulation advances in this mode
func (m Mode) Ticks() bool {
	return m == ModePlay
}

// Valid reports whether m is one of the declared modes
func (m Mode) Valid() bool {
	return m >= ModeLoading && m <= ModeGameOver
}
