// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/polydraw/draw"
	"github.com/gogpu/polydraw/editor"
	"github.com/gogpu/polydraw/summary"
)

// session owns the editor state for one window and everything that happens
// when an event arrives: reduce, print notices, ask for a redraw.
//
// gogpu delivers input on its event thread and OnDraw/OnClose on its render
// thread, one callback at a time, so session needs no locking.
type session struct {
	state    *editor.State
	renderer *draw.Renderer
	out      io.Writer // console notices
	redraw   func()    // nil when the host redraws continuously

	frame         editor.Frame
	width, height int // last drawn surface size
}

func newSession(state *editor.State, renderer *draw.Renderer, out io.Writer, width, height int) *session {
	return &session{
		state:    state,
		renderer: renderer,
		out:      out,
		frame:    state.Frame(),
		width:    width,
		height:   height,
	}
}

// resized records the size of the surface being drawn. Non-positive sizes
// are ignored.
func (s *session) resized(width, height int) {
	if width > 0 && height > 0 {
		s.width, s.height = width, height
	}
}

// handle feeds ev to the editor.
func (s *session) handle(ev editor.Event) {
	res := editor.Reduce(s.state, ev)
	for _, n := range res.Notices {
		fmt.Fprintln(s.out, n)
	}
	s.frame = res.Frame
	if s.redraw != nil {
		s.redraw()
	}
}

// finish ends the session, writing the snapshot at the last drawn size if
// path is set and logging a summary of the drawn graph.
func (s *session) finish(snapshot string) error {
	s.redraw = nil
	s.handle(editor.Quit{})

	if sum, err := summary.Build(s.state); err != nil {
		editor.Logger().Warn("polydraw: summary failed", slog.Any("err", err))
	} else {
		editor.Logger().Info("polydraw: session finished", slog.String("graph", sum.String()))
	}

	if snapshot == "" {
		return nil
	}
	return s.renderer.SavePNG(snapshot, s.width, s.height, s.frame)
}
