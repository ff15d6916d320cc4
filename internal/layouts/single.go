package layouts

import (
	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

func init() {
	registry.Register("single", func() registry.Layout { return Single{} })
}

// Single is one cube in the top-left corner.
type Single struct{}

func (Single) ID() string    { return "single" }
func (Single) Title() string { return "One cube to drag around" }

func (Single) Tiles(size, cube int) []board.Tile {
	return []board.Tile{place(1, 0, 0, size, cube)}
}
