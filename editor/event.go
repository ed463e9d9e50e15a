// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import "fmt"

// Event is an input consumed by [Reduce].
//
// The concrete event types are [SelectVertexTool], [SelectEdgeTool],
// [PointerClick] and [Quit].
type Event interface {
	event()
	fmt.Stringer
}

// SelectVertexTool activates vertex placement (key "g").
type SelectVertexTool struct{}

// SelectEdgeTool activates edge placement (key "f").
type SelectEdgeTool struct{}

// PointerClick is a primary-button press at a screen position.
type PointerClick struct {
	X, Y int
}

// Quit ends the editing session.
type Quit struct{}

func (SelectVertexTool) event() {}
func (SelectEdgeTool) event()   {}
func (PointerClick) event()     {}
func (Quit) event()             {}

func (SelectVertexTool) String() string { return "select-vertex-tool" }
func (SelectEdgeTool) String() string   { return "select-edge-tool" }
func (e PointerClick) String() string   { return fmt.Sprintf("click(%d,%d)", e.X, e.Y) }
func (Quit) String() string             { return "quit" }
