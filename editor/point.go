// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import "fmt"

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point formatted as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Box is an axis-aligned rectangle with inclusive bounds.
type Box struct {
	Min, Max Point
}

// HitBox returns the square hit-box of side size centered on p.
func HitBox(p Point, size int) Box {
	half := size / 2
	return Box{
		Min: Point{X: p.X - half, Y: p.Y - half},
		Max: Point{X: p.X + half, Y: p.Y + half},
	}
}

// Contains reports whether q lies inside b, edges included.
func (b Box) Contains(q Point) bool {
	return q.X >= b.Min.X && q.X <= b.Max.X &&
		q.Y >= b.Min.Y && q.Y <= b.Max.Y
}

// HitTest returns the index of the first vertex whose hit-box contains p,
// or -1 if none does. Earlier vertices shadow later ones where boxes overlap.
func HitTest(vertices []Point, p Point, size int) int {
	for i, v := range vertices {
		if HitBox(v, size).Contains(p) {
			return i
		}
	}
	return -1
}
