// Package config provides YAML-based board configuration loading.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-cubes/internal/board"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// BoardConfig contains all configuration for a cube board.
type BoardConfig struct {
	Board      BoardSection      `yaml:"board"`
	Disconnect DisconnectSection `yaml:"disconnect"`
	Render     RenderSection     `yaml:"render"`
	Layout     string            `yaml:"layout"`
	Tiles      []TileSpec        `yaml:"tiles"`
}

// BoardSection defines the fixed geometry shared with the presentation layer.
type BoardSection struct {
	Size     int `yaml:"size"`
	CubeSize int `yaml:"cube_size"`
}

// DisconnectSection defines the separation animation.
type DisconnectSection struct {
	Step       int `yaml:"step"`
	TickMS     int `yaml:"tick_ms"`
	DeadlineMS int `yaml:"deadline_ms"`
}

// RenderSection defines how board units map onto terminal cells.
type RenderSection struct {
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	Theme      string `yaml:"theme"` // "dark" or "light"
}

// TileSpec is a tile placement in YAML.
type TileSpec struct {
	ID int `yaml:"id"`
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
}

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Engine converts the config into board engine parameters.
func (c BoardConfig) Engine() board.Config {
	return board.Config{
		BoardSize:    c.Board.Size,
		CubeSize:     c.Board.CubeSize,
		Step:         c.Disconnect.Step,
		TickInterval: time.Duration(c.Disconnect.TickMS) * time.Millisecond,
		Deadline:     time.Duration(c.Disconnect.DeadlineMS) * time.Millisecond,
	}
}

// ExplicitTiles returns the tiles listed in the config, or nil when the
// named layout should be used.
func (c BoardConfig) ExplicitTiles() []board.Tile {
	if len(c.Tiles) == 0 {
		return nil
	}
	tiles := make([]board.Tile, len(c.Tiles))
	for i, t := range c.Tiles {
		tiles[i] = board.Tile{ID: t.ID, X: t.X, Y: t.Y}
	}
	return tiles
}

// Validate checks that the config describes a usable board.
// Tile placement is validated by the board itself.
func (c BoardConfig) Validate() error {
	switch {
	case c.Board.Size <= 0:
		return fmt.Errorf("%w: board.size must be positive, got %d", ErrInvalid, c.Board.Size)
	case c.Board.CubeSize <= 0:
		return fmt.Errorf("%w: board.cube_size must be positive, got %d", ErrInvalid, c.Board.CubeSize)
	case c.Board.CubeSize >= c.Board.Size:
		return fmt.Errorf("%w: board.cube_size %d must be smaller than board.size %d", ErrInvalid, c.Board.CubeSize, c.Board.Size)
	case c.Disconnect.Step <= 0:
		return fmt.Errorf("%w: disconnect.step must be positive, got %d", ErrInvalid, c.Disconnect.Step)
	case c.Disconnect.TickMS <= 0:
		return fmt.Errorf("%w: disconnect.tick_ms must be positive, got %d", ErrInvalid, c.Disconnect.TickMS)
	case c.Disconnect.DeadlineMS <= 0:
		return fmt.Errorf("%w: disconnect.deadline_ms must be positive, got %d", ErrInvalid, c.Disconnect.DeadlineMS)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalid)
	case c.Render.CellWidth > c.Board.CubeSize || c.Render.CellHeight > c.Board.CubeSize:
		return fmt.Errorf("%w: render cells larger than a cube would hide tiles", ErrInvalid)
	case c.Render.Theme != "" && c.Render.Theme != ThemeDark && c.Render.Theme != ThemeLight:
		return fmt.Errorf("%w: render.theme must be %q or %q, got %q", ErrInvalid, ThemeDark, ThemeLight, c.Render.Theme)
	}
	return nil
}
