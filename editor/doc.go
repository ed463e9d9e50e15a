// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package editor implements the vertex/edge input state machine behind polydraw.
//
// The editor consumes a stream of events (tool selection keys, pointer clicks, quit)
// and maintains two growing collections: the vertices placed by the user and the
// edges connecting pairs of them. It has no windowing or rendering dependency; the
// host feeds events through [Reduce] and draws the returned [Frame].
//
// # Tools
//
// Exactly one of three modes is active at a time:
//
//   - [ModeNone]: clicks are ignored.
//   - [ModeVertex]: every click appends a vertex at the click position.
//   - [ModeEdge]: two clicks on existing vertices connect them.
//
// # Edge rules
//
// Edges can only be formed once the vertex target has been reached. An edge is
// rejected when it would connect a vertex to itself, when the pair already exists
// in either direction, or (with [WithLastVertexGuard]) when the end point is the
// most recently placed vertex.
// Once the edge target is reached the edge tool switches itself off.
//
// # Usage
//
//	s := editor.New(3, 2)
//	editor.Reduce(s, editor.SelectVertexTool{})
//	editor.Reduce(s, editor.PointerClick{X: 10, Y: 10})
//	res := editor.Reduce(s, editor.SelectEdgeTool{})
//	for _, n := range res.Notices {
//	    fmt.Println(n)
//	}
//
// # Thread Safety
//
// State is NOT safe for concurrent use. The host is expected to drive it from
// its single event loop goroutine.
package editor
