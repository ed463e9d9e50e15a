// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/polydraw/editor"
)

// Points converts editor points to gg points at pixel centers.
//
// An integer screen coordinate names a whole pixel; gg addresses pixel corners,
// so the pixel at (x, y) is centered on (x+0.5, y+0.5).
func Points(ps []editor.Point) []gg.Point {
	out := make([]gg.Point, len(ps))
	for i, p := range ps {
		out[i] = center(p)
	}
	return out
}

func center(p editor.Point) gg.Point {
	return gg.Pt(float64(p.X)+0.5, float64(p.Y)+0.5)
}

// Segment is a line segment in gg coordinates.
type Segment struct {
	From, To gg.Point
}

// Segments converts a flat edge pair list to line segments. Elements 2i and
// 2i+1 form segment i; a trailing unpaired point is dropped.
func Segments(flat []editor.Point) []Segment {
	pts := Points(flat)
	out := make([]Segment, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		out = append(out, Segment{From: pts[i], To: pts[i+1]})
	}
	return out
}

// Square returns the marker rectangle for a vertex of side size as x, y, w, h.
// The marker covers the same pixels as the vertex hit-box origin.
func Square(p editor.Point, size int) (x, y, w, h float64) {
	half := size / 2
	return float64(p.X - half), float64(p.Y - half), float64(size), float64(size)
}
