// Package core provides fundamental types and utilities for the gallery.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point in field-local units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect represents an axis-aligned box in field units.
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

// Within reports whether r lies entirely inside outer (edges inclusive).
func (r Rect) Within(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Circle is a round hit area.
type Circle struct {
	Center Vec
	Radius float64
}

// Contains reports whether p lies strictly inside the circle.
// A point exactly on the rim is a miss.
func (c Circle) Contains(p Vec) bool {
	return c.Center.Dist(p) < c.Radius
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
