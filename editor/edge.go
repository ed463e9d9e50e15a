// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

// Edge is an undirected connection between two vertex positions.
type Edge struct {
	A, B Point
}

// Connects reports whether e joins p and q, in either order.
func (e Edge) Connects(p, q Point) bool {
	return (e.A == p && e.B == q) || (e.A == q && e.B == p)
}

// IsDuplicateEdge reports whether the flat pair list edges already holds an
// edge between start and end. Elements 2i and 2i+1 form edge i.
func IsDuplicateEdge(start, end Point, edges []Point) bool {
	for i := 0; i+1 < len(edges); i += 2 {
		if (Edge{A: edges[i], B: edges[i+1]}).Connects(start, end) {
			return true
		}
	}
	return false
}

// Pairs splits a flat pair list into edges. A trailing unpaired point is dropped.
func Pairs(flat []Point) []Edge {
	out := make([]Edge, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, Edge{A: flat[i], B: flat[i+1]})
	}
	return out
}
