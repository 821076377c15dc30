// Package core provides fundamental types and utilities for the arcade engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector used for positions and velocities.
// It is a value type; all operations return new vectors.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect represents an axis-aligned bounding box (top-left corner plus size).
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the rectangle of size (w, h) centred on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
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

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ClampPoint returns p moved to the nearest point inside r (edges included).
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.X, r.Right()),
		Y: ClampF(p.Y, r.Y, r.Bottom()),
	}
}

// ShapeKind tags the variant held by a Shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is the collision outline of an entity. Positions always refer to
// the shape's centre.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle only
	W, H   float64 // ShapeRect only
}

// Circle returns a circular shape.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns a rectangular shape.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeRect, W: w, H: h}
}

// HalfExtent returns half the width and height of the shape's bounding box.
func (s Shape) HalfExtent() Vec2 {
	if s.Kind == ShapeCircle {
		return Vec2{X: s.Radius, Y: s.Radius}
	}
	return Vec2{X: s.W / 2, Y: s.H / 2}
}

// Bounds returns the bounding box of the shape centred at pos.
func (s Shape) Bounds(pos Vec2) Rect {
	e := s.HalfExtent()
	return Rect{X: pos.X - e.X, Y: pos.Y - e.Y, W: e.X * 2, H: e.Y * 2}
}

// Overlaps reports whether shape a at pa overlaps shape b at pb.
//
//	circle-circle: distance between centres < r1 + r2
//	rect-rect:     interval overlap on both axes
//	circle-rect:   distance from the circle centre to the nearest point of the rect < radius
func Overlaps(a Shape, pa Vec2, b Shape, pb Vec2) bool {
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		return Distance(pa, pb) < a.Radius+b.Radius
	case a.Kind == ShapeRect && b.Kind == ShapeRect:
		return a.Bounds(pa).Intersects(b.Bounds(pb))
	case a.Kind == ShapeCircle:
		return circleRect(pa, a.Radius, b.Bounds(pb))
	default:
		return circleRect(pb, b.Radius, a.Bounds(pa))
	}
}

func circleRect(c Vec2, radius float64, r Rect) bool {
	return Distance(c, r.ClampPoint(c)) < radius
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
