package core

// RuntimeConfig describes the terminal a game is shown on.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use the current time
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
