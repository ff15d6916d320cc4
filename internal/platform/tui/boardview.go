package tui

import (
	"strconv"

	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
)

// Rune used for each tile state.
const (
	tileFill     = '█'
	tilePaired   = '▓'
	tileDragging = '▒'
	linkRune     = '·'
)

// boardView places the board on the screen and maps cells to board units.
type boardView struct {
	mapper core.CellMapper
	cols   int // Board width in cells
	rows   int // Board height in cells
}

// newBoardView centers the board horizontally on a screen of width screenW.
// The frame occupies one cell around the board area.
func newBoardView(r config.RenderSection, boardSize, screenW int) boardView {
	v := boardView{
		mapper: core.CellMapper{CellW: r.CellWidth, CellH: r.CellHeight},
	}
	v.cols = v.mapper.Cells(boardSize, r.CellWidth)
	v.rows = v.mapper.Cells(boardSize, r.CellHeight)
	v.mapper.OriginCol = max(1, (screenW-v.cols-2)/2+1)
	v.mapper.OriginRow = 1
	return v
}

// area returns the board region in screen cells, frame excluded.
func (v boardView) area() core.Rect {
	return core.NewRect(v.mapper.OriginCol, v.mapper.OriginRow, v.cols, v.rows)
}

// frame returns the board region including its border.
func (v boardView) frame() core.Rect {
	a := v.area()
	return core.NewRect(a.X-1, a.Y-1, a.W+2, a.H+2)
}

// height returns the number of screen rows the framed board needs.
func (v boardView) height() int {
	return v.rows + 2
}

// pointAt returns the board point at the center of a screen cell.
func (v boardView) pointAt(col, row int) core.Point {
	return v.mapper.ToBoard(col, row).Add(core.Pt(v.mapper.CellW/2, v.mapper.CellH/2))
}

// tileRect returns the screen cells covered by a tile.
func (v boardView) tileRect(t board.Tile, cube int) core.Rect {
	col, row := v.mapper.ToCell(t.Pos())
	return core.NewRect(col, row,
		v.mapper.Cells(cube, v.mapper.CellW),
		v.mapper.Cells(cube, v.mapper.CellH))
}

// draw renders the board frame, the link between paired tiles and every tile.
// Tiles are clipped to the board area so a run that ends outside the board
// never paints over the frame.
func (v boardView) draw(s *core.Screen, e *board.Engine, colors map[int]core.Color) {
	s.Clear()
	s.DrawBox(v.frame(), core.ColorBorder)

	area := v.area()
	cube := e.CubeSize()
	tiles := e.Tiles()
	pair, paired := e.ActiveConnection()
	dragged, dragging := e.Dragging()

	if paired {
		var a, b core.Rect
		for _, t := range tiles {
			switch t.ID {
			case pair.A:
				a = v.tileRect(t, cube)
			case pair.B:
				b = v.tileRect(t, cube)
			}
		}
		v.drawLink(s, center(a), center(b), area)
	}

	for _, t := range tiles {
		fill := tileFill
		switch {
		case dragging && t.ID == dragged:
			fill = tileDragging
		case paired && pair.Has(t.ID):
			fill = tilePaired
		}

		r := clipRect(v.tileRect(t, cube), area)
		s.DrawRect(r, fill, colors[t.ID])

		label := strconv.Itoa(t.ID)
		if r.W >= len(label) && r.H > 0 {
			labelColor := core.ColorDefault
			if paired && pair.Has(t.ID) {
				labelColor = core.ColorLink
			}
			s.DrawText(r.X, r.Y, label, labelColor)
		}
	}
}

// drawLink draws a dotted line between two cells, clipped to area.
func (v boardView) drawLink(s *core.Screen, from, to core.Point, area core.Rect) {
	for _, p := range lineCells(from, to) {
		if area.Contains(p.X, p.Y) {
			s.Set(p.X, p.Y, linkRune, core.ColorLink)
		}
	}
}

// lineCells returns the cells on the straight line from a to b, inclusive.
func lineCells(a, b core.Point) []core.Point {
	dx := b.X - a.X
	if dx < 0 {
		dx = -dx
	}
	dy := -(b.Y - a.Y)
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	var cells []core.Point
	d := dx + dy
	for {
		cells = append(cells, a)
		if a == b {
			return cells
		}
		d2 := 2 * d
		if d2 >= dy {
			d += dy
			a.X += sx
		}
		if d2 <= dx {
			d += dx
			a.Y += sy
		}
	}
}

func center(r core.Rect) core.Point {
	return core.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// clipRect returns the part of r inside bounds; empty when they do not overlap.
func clipRect(r, bounds core.Rect) core.Rect {
	x0 := max(r.X, bounds.X)
	y0 := max(r.Y, bounds.Y)
	x1 := min(r.Right(), bounds.Right())
	y1 := min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{X: x0, Y: y0}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
