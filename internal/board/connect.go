package board

import "github.com/vovakirdan/tui-cubes/internal/core"

// connectOnCollision pairs tile id with the first other tile, in display
// order, whose box overlaps pos. At most one pair exists at a time, so a
// collision while any pair is active changes nothing.
//
// First match wins even when several tiles overlap at once; the nearest
// tile is not preferred.
func (e *Engine) connectOnCollision(id int, pos core.Point) {
	if _, ok := e.board.Connection(); ok {
		return
	}

	for _, other := range e.board.tiles {
		if other.ID == id {
			continue
		}
		if !core.Overlaps(pos, other.Pos(), e.board.CubeSize()) {
			continue
		}

		pair := Pair{A: id, B: other.ID}
		e.board.SetConnection(pair)
		e.logger.Info("tiles connected", "a", pair.A, "b", pair.B)
		e.emit(ConnectedEvent{Pair: pair})
		return
	}
}

// moveCoupled translates both members of the pair by the dragged tile's
// delta. If the pair's combined bounds would leave the board the whole
// sample is dropped; neither tile is clamped on its own.
func (e *Engine) moveCoupled(t Tile, pair Pair, proposed core.Point) {
	partnerID, _ := pair.Partner(t.ID)
	partner, ok := e.board.Tile(partnerID)
	if !ok {
		return
	}

	delta := proposed.Sub(t.Pos())
	nextActive := t.Pos().Add(delta)
	nextPartner := partner.Pos().Add(delta)

	bounds := core.CombinedBounds(nextActive, nextPartner, e.board.CubeSize())
	if !bounds.Inside(e.board.Bounds()) {
		e.emit(MoveRejectedEvent{Pair: pair, Bounds: bounds})
		return
	}

	e.board.SetTilePosition(t.ID, nextActive.X, nextActive.Y)
	e.board.SetTilePosition(partner.ID, nextPartner.X, nextPartner.Y)
}
