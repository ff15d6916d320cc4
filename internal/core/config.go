package core

// RuntimeConfig describes the host terminal the board is shown on.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
