// Package core provides the terminal-facing primitives shared by the
// simulation and the platform layer: geometry, the screen buffer, input
// actions and the frame clock. It has no Bubble Tea dependency so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an integer, cell-aligned box used for screen layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or displacement in world units.
// World Y grows upward: a larger Y is higher up the ice field.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Box is a world-space axis-aligned bounding box centered on Center.
// Collision detection in the simulation is done with boxes only.
type Box struct {
	Center Vec2
	W, H   float64
}

// BoxAt builds a box of size w x h centered at c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, W: w, H: h}
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.Center.X - b.W/2 }

// MaxX returns the right edge.
func (b Box) MaxX() float64 { return b.Center.X + b.W/2 }

// MinY returns the bottom edge.
func (b Box) MinY() float64 { return b.Center.Y - b.H/2 }

// MaxY returns the top edge.
func (b Box) MaxY() float64 { return b.Center.Y + b.H/2 }

// Intersects reports whether the two boxes overlap.
// Touching edges do not count as an overlap, and a box with no area
// overlaps nothing.
func (b Box) Intersects(o Box) bool {
	if b.W <= 0 || b.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	if b.MinX() >= o.MaxX() || o.MinX() >= b.MaxX() {
		return false
	}
	if b.MinY() >= o.MaxY() || o.MinY() >= b.MaxY() {
		return false
	}
	return true
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.MinX() && p.X < b.MaxX() && p.Y >= b.MinY() && p.Y < b.MaxY()
}

// Scaled returns the box resized around its center by k.
func (b Box) Scaled(k float64) Box {
	return Box{Center: b.Center, W: b.W * k, H: b.H * k}
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOut is a quadratic ease-out curve on [0, 1].
func EaseOut(t float64) float64 {
	t = ClampF(t, 0, 1)
	return 1 - (1-t)*(1-t)
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
