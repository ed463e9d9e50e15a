// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

// ToolMode selects how pointer clicks are interpreted.
type ToolMode uint8

const (
	// ModeNone ignores clicks.
	ModeNone ToolMode = iota

	// ModeVertex appends a vertex on every click.
	ModeVertex

	// ModeEdge selects two existing vertices to connect.
	ModeEdge
)

// String returns a human-readable name for the mode.
func (m ToolMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeVertex:
		return "vertex"
	case ModeEdge:
		return "edge"
	default:
		return "unknown"
	}
}
