// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

// Notice is a user-facing console message produced while reducing an event.
type Notice uint8

const (
	// NoticeVertexTool confirms that the vertex tool was selected.
	NoticeVertexTool Notice = iota + 1

	// NoticeEdgeTool confirms that the edge tool was selected.
	NoticeEdgeTool

	// NoticeNeedVertices rejects an edge click made before the vertex target was reached.
	NoticeNeedVertices

	// NoticeMaxEdges reports that the edge target was reached and the edge tool is off.
	NoticeMaxEdges
)

// String returns the console line for the notice.
func (n Notice) String() string {
	switch n {
	case NoticeVertexTool:
		return "Vertex tool selected."
	case NoticeEdgeTool:
		return "Edge tool selected."
	case NoticeNeedVertices:
		return "Please add vertices before creating edges."
	case NoticeMaxEdges:
		return "Maximum number of edges reached."
	default:
		return ""
	}
}
