package core

// PointerKind is the phase of a pointer event, abstracted from the terminal's
// mouse protocol so board logic never sees Bubble Tea types.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerPress
	PointerMotion
	PointerRelease
)

// String returns a human-readable name for the pointer phase.
func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "Press"
	case PointerMotion:
		return "Motion"
	case PointerRelease:
		return "Release"
	default:
		return "None"
	}
}

// PointerButton identifies which button a press or release belongs to.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
)

// PointerEvent is a single pointer sample in screen cells.
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	Col    int
	Row    int
}

// CellMapper converts between screen cells and board units.
// One cell covers CellW×CellH board units; Origin is the screen cell holding
// board coordinate (0, 0).
type CellMapper struct {
	CellW, CellH int
	OriginCol    int
	OriginRow    int
}

// ToBoard maps a screen cell to the board point at the cell's top-left.
// The result may lie outside the board; callers clamp as their policy needs.
func (m CellMapper) ToBoard(col, row int) Point {
	return Point{
		X: (col - m.OriginCol) * m.CellW,
		Y: (row - m.OriginRow) * m.CellH,
	}
}

// ToCell maps a board point to the screen cell containing it.
func (m CellMapper) ToCell(p Point) (col, row int) {
	return m.OriginCol + floorDiv(p.X, m.CellW), m.OriginRow + floorDiv(p.Y, m.CellH)
}

// Cells returns how many cells span n board units, rounding up.
func (m CellMapper) Cells(n, unit int) int {
	if unit <= 0 {
		return 0
	}
	return (n + unit - 1) / unit
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
