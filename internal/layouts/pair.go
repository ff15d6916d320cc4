package layouts

import (
	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

func init() {
	registry.Register("pair", func() registry.Layout { return Pair{} })
}

// Pair is a cube in the corner and a second one three eighths of the way
// across the diagonal (300,300 on an 800 board).
type Pair struct{}

func (Pair) ID() string    { return "pair" }
func (Pair) Title() string { return "Two cubes, drag one onto the other" }

func (Pair) Tiles(size, cube int) []board.Tile {
	at := size * 3 / 8
	return []board.Tile{
		place(1, 0, 0, size, cube),
		place(2, at, at, size, cube),
	}
}
