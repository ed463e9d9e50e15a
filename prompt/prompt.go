// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package prompt reads the session targets from a text stream.
package prompt

import (
	"errors"
	"fmt"
	"io"
)

// ErrMissingInput is returned when the stream ends before a target is read.
var ErrMissingInput = errors.New("prompt: missing input")

// Prompt texts, written before each value is read.
const (
	VertexPrompt = "Enter the number of vertices: "
	EdgePrompt   = "Enter the number of edges: "
)

// Targets are the vertex and edge counts for a drawing session.
// Neither value is range checked.
type Targets struct {
	Vertices int
	Edges    int
}

// ReadTargets writes each prompt to w and reads the vertex target, then the
// edge target, from r as whitespace separated integers.
func ReadTargets(r io.Reader, w io.Writer) (Targets, error) {
	var t Targets
	if err := ask(r, w, VertexPrompt, &t.Vertices); err != nil {
		return Targets{}, fmt.Errorf("prompt: read vertex count: %w", err)
	}
	if err := ask(r, w, EdgePrompt, &t.Edges); err != nil {
		return Targets{}, fmt.Errorf("prompt: read edge count: %w", err)
	}
	return t, nil
}

func ask(r io.Reader, w io.Writer, question string, v *int) error {
	if _, err := io.WriteString(w, question); err != nil {
		return err
	}
	if _, err := fmt.Fscan(r, v); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrMissingInput
		}
		return err
	}
	return nil
}
