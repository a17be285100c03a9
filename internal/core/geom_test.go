package core

import (
	"math"
	"testing"
)

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
			name:     "adjacent horizontal (shared edge)",
			a:        NewRect(0, 0, 400, 600),
			b:        NewRect(400, 0, 400, 600),
			expected: false,
		},
		{
			name:     "adjacent vertical (shared edge)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10.5, 10),
			b:        NewRect(10.25, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (inclusive)", 30, 25, true},
		{"outside left", 9.99, 15, false},
		{"outside right", 30.01, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 25.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndArea(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.Area() != 300 {
		t.Errorf("Area() = %v, expected 300", r.Area())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestRectScale(t *testing.T) {
	r := NewRect(100, 50, 200, 100).Scale(0.5, 2)
	want := NewRect(50, 100, 100, 200)
	if r != want {
		t.Errorf("Scale() = %+v, expected %+v", r, want)
	}
}

func TestDistancePointToSegment(t *testing.T) {
	tests := []struct {
		name                   string
		px, py, x1, y1, x2, y2 float64
		expected               float64
	}{
		{"perpendicular to vertical segment", 10, 50, 0, 0, 0, 100, 10},
		{"beyond segment end", 0, 110, 0, 0, 0, 100, 10},
		{"before segment start", 3, -4, 0, 0, 0, 100, 5},
		{"on segment", 50, 0, 0, 0, 100, 0, 0},
		{"zero-length segment", 3, 4, 0, 0, 0, 0, 5},
		{"horizontal segment", 40, 23, 0, 20, 100, 20, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DistancePointToSegment(tc.px, tc.py, tc.x1, tc.y1, tc.x2, tc.y2)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("DistancePointToSegment() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
