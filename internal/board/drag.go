package board

import "github.com/vovakirdan/tui-cubes/internal/core"

// dragSession is the drag state machine: idle when active is false.
type dragSession struct {
	active bool
	tileID int
	offset core.Point // Pointer position minus tile corner at press time
}

// PointerDown starts dragging tile id from board-local point p.
// The grab offset is kept so the tile does not jump under the pointer.
// Refused while a disconnect run is active or if the tile is unknown.
func (e *Engine) PointerDown(id int, p core.Point) bool {
	if e.run != nil {
		e.logger.Debug("drag refused, disconnect in progress", "tile", id)
		return false
	}
	t, ok := e.board.Tile(id)
	if !ok {
		return false
	}

	e.drag = dragSession{
		active: true,
		tileID: id,
		offset: p.Sub(t.Pos()),
	}
	e.logger.Debug("drag started", "tile", id, "offset_x", e.drag.offset.X, "offset_y", e.drag.offset.Y)
	return true
}

// PointerMove feeds one pointer sample into the active drag.
// Samples with no active drag are ignored.
func (e *Engine) PointerMove(p core.Point) {
	if !e.drag.active {
		return
	}

	t, ok := e.board.Tile(e.drag.tileID)
	if !ok {
		e.PointerUp()
		return
	}

	proposed := p.Sub(e.drag.offset)
	if pair, ok := e.board.Connection(); ok && pair.Has(t.ID) {
		e.moveCoupled(t, pair, proposed)
		return
	}
	e.moveFree(t, proposed)
}

// PointerUp ends the drag. Safe to call when idle.
func (e *Engine) PointerUp() {
	if e.drag.active {
		e.logger.Debug("drag ended", "tile", e.drag.tileID)
	}
	e.drag = dragSession{}
}

// moveFree slides a lone tile along the board edges instead of rejecting the
// move, then checks for a collision that forms a pair.
func (e *Engine) moveFree(t Tile, proposed core.Point) {
	next := core.ClampPoint(proposed, 0, e.board.Limit())
	e.board.SetTilePosition(t.ID, next.X, next.Y)
	e.connectOnCollision(t.ID, next)
}
