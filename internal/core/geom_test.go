package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "corner touch (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected bool
	}{
		{"same position", Pt(100, 100), Pt(100, 100), true},
		{"partial", Pt(0, 0), Pt(49, 49), true},
		{"edge touch", Pt(0, 0), Pt(50, 0), false},
		{"far apart", Pt(0, 0), Pt(300, 300), false},
		{"overlap on x only", Pt(0, 0), Pt(10, 60), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b, 50); got != tc.expected {
				t.Errorf("Overlaps(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestCombinedBounds(t *testing.T) {
	got := CombinedBounds(Pt(100, 40), Pt(20, 200), 50)
	want := NewRect(20, 40, 130, 210)
	if got != want {
		t.Errorf("CombinedBounds() = %+v, expected %+v", got, want)
	}

	// Order of arguments does not matter.
	if rev := CombinedBounds(Pt(20, 200), Pt(100, 40), 50); rev != want {
		t.Errorf("CombinedBounds() (reversed) = %+v, expected %+v", rev, want)
	}

	// Identical boxes collapse to a single square.
	if same := CombinedBounds(Pt(5, 5), Pt(5, 5), 10); same != NewRect(5, 5, 10, 10) {
		t.Errorf("CombinedBounds() of identical boxes = %+v", same)
	}
}

func TestRectInside(t *testing.T) {
	outer := NewRect(0, 0, 800, 800)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"fully inside", NewRect(10, 10, 100, 100), true},
		{"flush with all edges", NewRect(0, 0, 800, 800), true},
		{"past right edge", NewRect(750, 0, 100, 100), false},
		{"past bottom edge", NewRect(0, 701, 100, 100), false},
		{"negative x", NewRect(-1, 0, 100, 100), false},
		{"negative y", NewRect(0, -1, 100, 100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inside(outer); got != tc.expected {
				t.Errorf("Inside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20)
	if got := p.Add(Pt(5, -5)); got != Pt(15, 15) {
		t.Errorf("Add() = %v, expected (15, 15)", got)
	}
	if got := p.Sub(Pt(4, 30)); got != Pt(6, -10) {
		t.Errorf("Sub() = %v, expected (6, -10)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if got := ClampPoint(Pt(-20, 900), 0, 750); got != Pt(0, 750) {
		t.Errorf("ClampPoint() = %v, expected (0, 750)", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
