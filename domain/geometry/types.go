// Package geometry provides the point, size and polygon math used by the
// boundary tracer and the overlay controller.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D point in the floor plan's local pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return fromVec(r2.Add(p.vec(), q.vec())) }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return fromVec(r2.Sub(p.vec(), q.vec())) }

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point { return fromVec(r2.Scale(f, p.vec())) }

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a.vec(), b.vec()))
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Half returns the vector from a box's top-left corner to its center.
func (s Size) Half() Point { return Point{X: s.Width / 2, Y: s.Height / 2} }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectAt returns the rectangle of size s whose top-left corner is at p.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Contains returns true if the point is inside the rectangle (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Bounds computes the axis-aligned bounding box of a set of points.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
