// Package core provides fundamental types and utilities for the cube board.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// board logic pure and testable.
package core

// Point is a position in board units.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns the size×size box anchored at p.
func Square(p Point, size int) Rect {
	return Rect{X: p.X, Y: p.Y, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inside reports whether r lies entirely within outer. Shared edges count
// as inside.
func (r Rect) Inside(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x := Min(r.X, other.X)
	y := Min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: Max(r.Right(), other.Right()) - x,
		H: Max(r.Bottom(), other.Bottom()) - y,
	}
}

// Overlaps reports whether the size×size boxes anchored at a and b intersect.
func Overlaps(a, b Point, size int) bool {
	return Square(a, size).Intersects(Square(b, size))
}

// CombinedBounds returns the smallest box containing the size×size boxes
// anchored at a and b.
func CombinedBounds(a, b Point, size int) Rect {
	return Square(a, size).Union(Square(b, size))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampPoint clamps both coordinates of p into [min, max].
func ClampPoint(p Point, min, max int) Point {
	return Point{X: Clamp(p.X, min, max), Y: Clamp(p.Y, min, max)}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
