package layouts

import (
	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

func init() {
	registry.Register("trio", func() registry.Layout { return Trio{} })
}

// Trio is three cubes across the middle row: left wall, center, right wall.
type Trio struct{}

func (Trio) ID() string    { return "trio" }
func (Trio) Title() string { return "Three cubes in a row" }

func (Trio) Tiles(size, cube int) []board.Tile {
	mid := (size - cube) / 2
	return []board.Tile{
		place(1, 0, mid, size, cube),
		place(2, mid, mid, size, cube),
		place(3, size-cube, mid, size, cube),
	}
}
