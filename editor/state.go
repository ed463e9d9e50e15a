// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

// State is the complete editor state. Create it with [New] and mutate it only
// through [Reduce].
type State struct {
	vertexTarget int
	edgeTarget   int
	opts         options

	vertices []Point
	edges    []Point // flat pair list
	mode     ToolMode

	pending    Point
	pendingSet bool

	edgeCount int
	quit      bool
}

// New creates an empty State with vertex target v and edge target e.
// The targets are not validated.
func New(v, e int, opts ...Option) *State {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &State{
		vertexTarget: v,
		edgeTarget:   e,
		opts:         o,
	}
}

// VertexTarget returns the number of vertices required before edges can be drawn.
func (s *State) VertexTarget() int { return s.vertexTarget }

// EdgeTarget returns the number of edges after which the edge tool switches off.
func (s *State) EdgeTarget() int { return s.edgeTarget }

// VertexSize returns the side length of vertex markers and hit-boxes.
func (s *State) VertexSize() int { return s.opts.vertexSize }

// Mode returns the active tool.
func (s *State) Mode() ToolMode { return s.mode }

// Vertices returns a copy of the placed vertices in creation order.
func (s *State) Vertices() []Point {
	return append([]Point(nil), s.vertices...)
}

// EdgePoints returns a copy of the flat edge pair list.
func (s *State) EdgePoints() []Point {
	return append([]Point(nil), s.edges...)
}

// Edges returns the completed edges in creation order.
func (s *State) Edges() []Edge {
	return Pairs(s.edges)
}

// EdgeCount returns the number of completed edges.
func (s *State) EdgeCount() int { return s.edgeCount }

// Pending returns the chosen start vertex of the edge in progress, if any.
func (s *State) Pending() (Point, bool) {
	return s.pending, s.pendingSet
}

// Quit reports whether a [Quit] event has been observed.
func (s *State) Quit() bool { return s.quit }

// Status summarizes the tool state.
func (s *State) Status() Status {
	return Status{
		Mode:         s.mode,
		VertexCount:  len(s.vertices),
		VertexTarget: s.vertexTarget,
		EdgeCount:    s.edgeCount,
		EdgeTarget:   s.edgeTarget,
		Pending:      s.pendingSet,
	}
}

// Frame returns the render output for the current state.
func (s *State) Frame() Frame {
	return Frame{
		Vertices:   s.Vertices(),
		Edges:      s.EdgePoints(),
		VertexSize: s.opts.vertexSize,
		Status:     s.Status(),
	}
}

func (s *State) clearPending() {
	s.pending = Point{}
	s.pendingSet = false
}
