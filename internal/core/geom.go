// Package core provides fundamental types and utilities for the splitter.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W*0.5, r.Y + r.H*0.5
}

// Contains returns true if the point (x, y) lies inside the rectangle.
// Edges are inclusive on both sides, so a point on a shared edge between two
// adjacent rectangles is contained by both; callers that need a unique owner
// take the first match.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Intersects returns true if this rectangle overlaps another with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale returns the rectangle scaled about the origin by (sx, sy).
// Edges are scaled rather than sizes so that rectangles sharing an edge
// still share it afterwards.
func (r Rect) Scale(sx, sy float64) Rect {
	x0, y0 := r.X*sx, r.Y*sy
	return Rect{X: x0, Y: y0, W: r.Right()*sx - x0, H: r.Bottom()*sy - y0}
}

// DistancePointToSegment returns the Euclidean distance from (px, py) to the
// segment (x1, y1)-(x2, y2). A zero-length segment degrades to a point.
func DistancePointToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 && dy == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
	t = ClampF(t, 0, 1)
	sx := x1 + t*dx
	sy := y1 + t*dy
	return math.Hypot(px-sx, py-sy)
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(val, hi))
}
