// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/polydraw/editor"
)

// keyEvent maps a key press to an editor event. Only F and G are bound.
func keyEvent(key gpucontext.Key) (editor.Event, bool) {
	switch key {
	case gpucontext.KeyF:
		return editor.SelectEdgeTool{}, true
	case gpucontext.KeyG:
		return editor.SelectVertexTool{}, true
	default:
		return nil, false
	}
}

// buttonEvent maps a mouse press to an editor click. Only the left button is
// bound; the position is truncated to whole pixels.
func buttonEvent(button gpucontext.MouseButton, x, y float64) (editor.Event, bool) {
	if button != gpucontext.MouseButtonLeft {
		return nil, false
	}
	return editor.PointerClick{X: int(x), Y: int(y)}, true
}
