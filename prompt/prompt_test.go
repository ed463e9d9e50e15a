// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadTargets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Targets
	}{
		{"separate lines", "4\n3\n", Targets{Vertices: 4, Edges: 3}},
		{"same line", "  5 7", Targets{Vertices: 5, Edges: 7}},
		{"negative values pass through", "-1\n0\n", Targets{Vertices: -1, Edges: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadTargets(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("ReadTargets() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadTargets() = %+v, want %+v", got, tt.want)
			}
			if out.String() != VertexPrompt+EdgePrompt {
				t.Errorf("prompts = %q, want %q", out.String(), VertexPrompt+EdgePrompt)
			}
		})
	}
}

func TestReadTargetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		missing bool
	}{
		{"empty", "", "read vertex count", true},
		{"no edge count", "3\n", "read edge count", true},
		{"non-numeric vertices", "abc\n2\n", "read vertex count", false},
		{"non-numeric edges", "3 x", "read edge count", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadTargets(strings.NewReader(tt.input), &out)
			if err == nil {
				t.Fatalf("ReadTargets() = %+v, want error", got)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
			if got := errors.Is(err, ErrMissingInput); got != tt.missing {
				t.Errorf("errors.Is(err, ErrMissingInput) = %v, want %v", got, tt.missing)
			}
		})
	}
}
