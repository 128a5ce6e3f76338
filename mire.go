package mire

import "math"

// Vec2 is a 2D vector used for world positions, movement deltas, and
// directions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Tile addresses one cell of the terrain grid. Value type with no ownership
// semantics; derived from world positions via [CoordsToTile].
type Tile struct {
	Col, Row int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Overlaps reports whether two world positions lie within a rectangular
// tolerance of each other: |a.X-b.X| < width and |a.Y-b.Y| < height.
// Used for projectile hit checks against actor positions.
func Overlaps(a, b Vec2, width, height float64) bool {
	return math.Abs(a.X-b.X) < width && math.Abs(a.Y-b.Y) < height
}
