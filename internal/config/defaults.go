package config

import (
	_ "embed"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the default board configuration.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Board: BoardSection{
			Size:     800,
			CubeSize: 100,
		},
		Disconnect: DisconnectSection{
			Step:       2,
			TickMS:     16,
			DeadlineMS: 1000,
		},
		Render: RenderSection{
			CellWidth:  20,
			CellHeight: 50,
			Theme:      ThemeDark,
		},
		Layout: "pair",
	}
}
