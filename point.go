package rivegg

import "github.com/gogpu/rivegg/scene"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// scenePoint narrows p to the display list's float32 point.
func (p Point) scenePoint() scene.Point {
	return scene.Point{X: float32(p.X), Y: float32(p.Y)}
}

// Centroid returns the average of three points.
func Centroid(a, b, c Point) Point {
	return a.Add(b).Add(c).Mul(1.0 / 3)
}
