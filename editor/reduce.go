// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import "log/slog"

// Result is the output of a single [Reduce] step.
type Result struct {
	// Frame is the state to draw after the event.
	Frame Frame

	// Notices are the console messages produced by the event, in order.
	Notices []Notice
}

// Reduce applies ev to s and returns what to draw and what to tell the user.
// Events arriving after [Quit] are ignored.
//
// By default an edge may end on the most recently placed vertex. The SDL
// drawer this tool replaces rejected such edges; [WithLastVertexGuard]
// restores that behavior.
func Reduce(s *State, ev Event) Result {
	var notices []Notice
	if !s.quit {
		Logger().Debug("editor: event", slog.String("event", ev.String()), slog.String("mode", s.mode.String()))
		notices = s.apply(ev)
	}
	return Result{Frame: s.Frame(), Notices: notices}
}

func (s *State) apply(ev Event) []Notice {
	switch e := ev.(type) {
	case SelectVertexTool:
		s.mode = ModeVertex
		s.clearPending()
		return []Notice{NoticeVertexTool}
	case SelectEdgeTool:
		s.mode = ModeEdge
		if s.opts.edgeToolResetsStart {
			s.clearPending()
		}
		return []Notice{NoticeEdgeTool}
	case PointerClick:
		return s.click(Pt(e.X, e.Y))
	case Quit:
		s.quit = true
	}
	return nil
}

func (s *State) click(p Point) []Notice {
	switch s.mode {
	case ModeVertex:
		s.vertices = append(s.vertices, p)
		s.pendingSet = false
		return nil
	case ModeEdge:
		var notices []Notice
		if len(s.vertices) < s.vertexTarget {
			notices = append(notices, NoticeNeedVertices)
		} else {
			s.pick(p)
		}
		if s.edgeCount >= s.edgeTarget {
			s.mode = ModeNone
			s.clearPending()
			Logger().Info("editor: edge target reached", slog.Int("edges", s.edgeCount))
			notices = append(notices, NoticeMaxEdges)
		}
		return notices
	default:
		return nil
	}
}

// pick handles an edge-tool click once enough vertices exist.
func (s *State) pick(p Point) {
	i := HitTest(s.vertices, p, s.opts.vertexSize)
	if !s.pendingSet {
		if i >= 0 {
			s.pending = s.vertices[i]
			s.pendingSet = true
		}
		return
	}

	start := s.pending
	s.clearPending()
	if i < 0 || (s.opts.guardLastVertex && i == len(s.vertices)-1) {
		return
	}
	end := s.vertices[i]
	if end == start || IsDuplicateEdge(start, end, s.edges) {
		return
	}
	s.edges = append(s.edges, start, end)
	s.edgeCount++
	Logger().Debug("editor: edge added",
		slog.String("from", start.String()),
		slog.String("to", end.String()),
		slog.Int("count", s.edgeCount))
}
