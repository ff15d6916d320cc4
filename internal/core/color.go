package core

// Color identifies a palette entry for a screen cell.
// The platform layer maps each entry to a terminal color per theme.
type Color uint8

// Palette entries used by the board renderer.
const (
	ColorDefault Color = iota
	ColorOrange
	ColorBlue
	ColorRed
	ColorBorder
	ColorLink
	ColorMuted
	ColorAccent
)

// TileColors is the cycle offered by the tile color picker, in menu order.
var TileColors = []Color{ColorOrange, ColorBlue, ColorRed}

// NextTileColor returns the picker entry after c, wrapping around.
// Colors outside the picker start the cycle over.
func NextTileColor(c Color) Color {
	for i, tc := range TileColors {
		if tc == c {
			return TileColors[(i+1)%len(TileColors)]
		}
	}
	return TileColors[0]
}

// String returns the picker label for the color.
func (c Color) String() string {
	switch c {
	case ColorOrange:
		return "Orange"
	case ColorBlue:
		return "Blue"
	case ColorRed:
		return "Red"
	case ColorBorder:
		return "Border"
	case ColorLink:
		return "Link"
	case ColorMuted:
		return "Muted"
	case ColorAccent:
		return "Accent"
	default:
		return "Default"
	}
}
