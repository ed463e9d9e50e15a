// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package draw renders editor frames with gg.
//
// The renderer clears the canvas to black, strokes every edge as a white line
// segment and fills every vertex as a white square. An optional status line
// shows the active tool and the vertex and edge counts.
//
//	r := draw.NewRenderer(draw.WithFace(face))
//	dc := gg.NewContext(800, 600)
//	if err := r.Draw(dc, state.Frame()); err != nil {
//	    return err
//	}
package draw
