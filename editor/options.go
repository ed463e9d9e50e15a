// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

// DefaultVertexSize is the side length of a vertex marker and its hit-box.
const DefaultVertexSize = 10

// Option configures a State during creation.
//
// Example:
//
//	s := editor.New(4, 3, editor.WithVertexSize(16))
type Option func(*options)

type options struct {
	vertexSize          int
	edgeToolResetsStart bool
	guardLastVertex     bool
}

func defaultOptions() options {
	return options{
		vertexSize: DefaultVertexSize,
	}
}

// WithVertexSize sets the side length of vertex markers and hit-boxes.
// Values below 1 keep the default.
func WithVertexSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.vertexSize = size
		}
	}
}

// WithEdgeToolResetsPending makes selecting the edge tool discard a pending
// start vertex left over from an earlier edge session. By default the pending
// start survives re-selection of the edge tool.
func WithEdgeToolResetsPending(reset bool) Option {
	return func(o *options) {
		o.edgeToolResetsStart = reset
	}
}

// WithLastVertexGuard rejects the most recently placed vertex as the end point
// of an edge. It may still be picked as a start point. Off by default, so any
// vertex other than the start can close an edge.
func WithLastVertexGuard(guard bool) Option {
	return func(o *options) {
		o.guardLastVertex = guard
	}
}
