// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

// Frame is the render output of the editor: everything a renderer needs to draw
// one frame. Slices are copies and remain valid after further events.
type Frame struct {
	// Vertices are drawn as filled squares of side VertexSize.
	Vertices []Point

	// Edges is the flat pair list; elements 2i and 2i+1 are the ends of segment i.
	Edges []Point

	// VertexSize is the side length of a vertex marker.
	VertexSize int

	// Status describes the tool state for an optional overlay.
	Status Status
}

// Status is a summary of the editor's tool state.
type Status struct {
	Mode         ToolMode
	VertexCount  int
	VertexTarget int
	EdgeCount    int
	EdgeTarget   int
	Pending      bool
}

// Segments returns the edges of the frame as pairs.
func (f Frame) Segments() []Edge {
	return Pairs(f.Edges)
}
