package layouts

import (
	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

func init() {
	registry.Register("grid", func() registry.Layout { return Grid{} })
}

// Grid is four cubes centered on the board's quarter points.
type Grid struct{}

func (Grid) ID() string    { return "grid" }
func (Grid) Title() string { return "Four cubes on a 2x2 grid" }

func (Grid) Tiles(size, cube int) []board.Tile {
	near := size/4 - cube/2
	far := size*3/4 - cube/2
	return []board.Tile{
		place(1, near, near, size, cube),
		place(2, far, near, size, cube),
		place(3, near, far, size, cube),
		place(4, far, far, size, cube),
	}
}
