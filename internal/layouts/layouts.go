// Package layouts registers the stock starting layouts.
// Each layout scales with the configured board so any valid config works.
package layouts

import (
	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

// place builds a tile clamped onto the board.
func place(id, x, y, size, cube int) board.Tile {
	limit := size - cube
	return board.Tile{
		ID: id,
		X:  core.Clamp(x, 0, limit),
		Y:  core.Clamp(y, 0, limit),
	}
}

// ForConfig returns the starting tiles for cfg: the explicit tile list when
// present, otherwise the named layout (override wins over cfg.Layout when
// non-empty).
func ForConfig(cfg config.BoardConfig, override string) ([]board.Tile, error) {
	if override == "" {
		if tiles := cfg.ExplicitTiles(); tiles != nil {
			return tiles, nil
		}
		override = cfg.Layout
	}

	layout, err := registry.Create(override)
	if err != nil {
		return nil, err
	}
	return layout.Tiles(cfg.Board.Size, cfg.Board.CubeSize), nil
}
