// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsDuplicateEdge(t *testing.T) {
	a, b, c := Pt(0, 0), Pt(10, 0), Pt(0, 10)
	edges := []Point{a, b, b, c}

	tests := []struct {
		name       string
		start, end Point
		want       bool
	}{
		{"same direction", a, b, true},
		{"reverse direction", b, a, true},
		{"second edge reversed", c, b, true},
		{"absent pair", a, c, false},
		{"self pair", a, a, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateEdge(tt.start, tt.end, edges); got != tt.want {
				t.Errorf("IsDuplicateEdge(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsDuplicateEdgeEmpty(t *testing.T) {
	if IsDuplicateEdge(Pt(1, 1), Pt(2, 2), nil) {
		t.Error("IsDuplicateEdge on empty list = true, want false")
	}
}

func TestPairs(t *testing.T) {
	flat := []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4), Pt(5, 5)}
	want := []Edge{
		{A: Pt(1, 1), B: Pt(2, 2)},
		{A: Pt(3, 3), B: Pt(4, 4)},
	}
	if diff := cmp.Diff(want, Pairs(flat)); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
}
