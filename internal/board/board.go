// Package board implements the cube board: tile storage, pointer dragging,
// collision-driven connections and the disconnect animation.
//
// The board is single-threaded. All commands must be delivered from one
// serialized event loop (the Bubble Tea Update loop in this repository);
// timers only produce messages and never call into the board directly.
package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

var (
	// ErrInvalidLayout is returned when a starting layout cannot be placed on the board.
	ErrInvalidLayout = errors.New("board: invalid layout")

	// ErrInvalidConfig is returned for non-positive animation parameters.
	ErrInvalidConfig = errors.New("board: invalid config")
)

// Tile is a square piece on the board. X and Y are the top-left corner in
// board units.
type Tile struct {
	ID int
	X  int
	Y  int
}

// Pos returns the tile's top-left corner.
func (t Tile) Pos() core.Point {
	return core.Point{X: t.X, Y: t.Y}
}

// Pair is an unordered connection between two distinct tiles.
// A is the tile that was being dragged when the pair formed.
type Pair struct {
	A int
	B int
}

// Has reports whether id is a member of the pair.
func (p Pair) Has(id int) bool {
	return p.A == id || p.B == id
}

// Partner returns the other member of the pair.
func (p Pair) Partner(id int) (int, bool) {
	switch id {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return 0, false
}

// Same reports whether both pairs connect the same two tiles, in any order.
func (p Pair) Same(other Pair) bool {
	return (p.A == other.A && p.B == other.B) || (p.A == other.B && p.B == other.A)
}

// Board is the single source of truth for tile positions and the active
// connection. It applies no policy: callers validate moves before writing.
type Board struct {
	size  int
	cube  int
	tiles []Tile
	index map[int]int

	conn    Pair
	hasConn bool
}

// NewBoard creates a size×size board holding the given tiles in display order.
// Every tile must fit inside the board and ids must be unique.
func NewBoard(size, cube int, tiles []Tile) (*Board, error) {
	if size <= 0 || cube <= 0 {
		return nil, fmt.Errorf("%w: board size %d and cube size %d must be positive", ErrInvalidLayout, size, cube)
	}
	if cube > size {
		return nil, fmt.Errorf("%w: cube size %d exceeds board size %d", ErrInvalidLayout, cube, size)
	}

	b := &Board{
		size:  size,
		cube:  cube,
		tiles: make([]Tile, 0, len(tiles)),
		index: make(map[int]int, len(tiles)),
	}
	for _, t := range tiles {
		if _, dup := b.index[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tile id %d", ErrInvalidLayout, t.ID)
		}
		if !b.inBounds(t.Pos()) {
			return nil, fmt.Errorf("%w: tile %d at (%d, %d) is outside the board", ErrInvalidLayout, t.ID, t.X, t.Y)
		}
		b.index[t.ID] = len(b.tiles)
		b.tiles = append(b.tiles, t)
	}
	return b, nil
}

// Size returns the board side length.
func (b *Board) Size() int {
	return b.size
}

// CubeSize returns the tile side length.
func (b *Board) CubeSize() int {
	return b.cube
}

// Bounds returns the board rectangle.
func (b *Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.size, b.size)
}

// Limit returns the largest coordinate a tile corner may take.
func (b *Board) Limit() int {
	return b.size - b.cube
}

// Tile looks up a tile by id.
func (b *Board) Tile(id int) (Tile, bool) {
	i, ok := b.index[id]
	if !ok {
		return Tile{}, false
	}
	return b.tiles[i], true
}

// Tiles returns a copy of all tiles in display order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// SetTilePosition moves a tile unconditionally.
// Returns false if the id is unknown.
func (b *Board) SetTilePosition(id, x, y int) bool {
	i, ok := b.index[id]
	if !ok {
		return false
	}
	b.tiles[i].X = x
	b.tiles[i].Y = y
	return true
}

// TileAt returns the topmost tile covering p. Later tiles in display order
// are drawn above earlier ones.
func (b *Board) TileAt(p core.Point) (Tile, bool) {
	for i := len(b.tiles) - 1; i >= 0; i-- {
		t := b.tiles[i]
		if core.Square(t.Pos(), b.cube).Contains(p.X, p.Y) {
			return t, true
		}
	}
	return Tile{}, false
}

// Connection returns the active pair, if any.
func (b *Board) Connection() (Pair, bool) {
	return b.conn, b.hasConn
}

// SetConnection replaces the active pair.
func (b *Board) SetConnection(p Pair) {
	b.conn = p
	b.hasConn = true
}

// ClearConnection removes the active pair. Clearing an empty board is a no-op.
func (b *Board) ClearConnection() {
	b.conn = Pair{}
	b.hasConn = false
}

// OutOfBounds reports whether any tile's corner lies outside [0, Limit()].
func (b *Board) OutOfBounds() bool {
	for _, t := range b.tiles {
		if !b.inBounds(t.Pos()) {
			return true
		}
	}
	return false
}

func (b *Board) inBounds(p core.Point) bool {
	limit := b.Limit()
	return p.X >= 0 && p.X <= limit && p.Y >= 0 && p.Y <= limit
}
