// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/polydraw/editor"
)

var (
	// ErrNilContext is returned when Draw is called without a drawing context.
	ErrNilContext = errors.New("draw: nil context")

	// ErrInvalidDimensions is returned when a snapshot size is not positive.
	ErrInvalidDimensions = errors.New("draw: invalid dimensions")
)

// Colors used for the canvas.
var (
	Background = gg.Black
	Foreground = gg.White
)

// Renderer draws editor frames onto a gg.Context.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	face      text.Face
	lineWidth float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFace enables the status line drawn with face. A nil face disables it.
func WithFace(face text.Face) Option {
	return func(r *Renderer) {
		r.face = face
	}
}

// WithLineWidth sets the stroke width of edges. Values below or equal to zero
// keep the default of one pixel.
func WithLineWidth(w float64) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.lineWidth = w
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{lineWidth: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw renders f onto dc: a black background, white edges, white vertex
// squares on top and, if a face is configured, the status line.
func (r *Renderer) Draw(dc *gg.Context, f editor.Frame) error {
	if dc == nil {
		return ErrNilContext
	}
	dc.ClearWithColor(Background)
	dc.SetColor(Foreground.Color())

	if err := r.drawEdges(dc, f.Edges); err != nil {
		return err
	}
	if err := r.drawVertices(dc, f.Vertices, f.VertexSize); err != nil {
		return err
	}
	if r.face != nil {
		r.drawStatus(dc, f.Status)
	}
	return nil
}

func (r *Renderer) drawEdges(dc *gg.Context, flat []editor.Point) error {
	segs := Segments(flat)
	if len(segs) == 0 {
		return nil
	}
	dc.SetLineWidth(r.lineWidth)
	for _, s := range segs {
		dc.MoveTo(s.From.X, s.From.Y)
		dc.LineTo(s.To.X, s.To.Y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("draw: stroke %d edges: %w", len(segs), err)
	}
	return nil
}

func (r *Renderer) drawVertices(dc *gg.Context, vertices []editor.Point, size int) error {
	if len(vertices) == 0 {
		return nil
	}
	for _, v := range vertices {
		dc.DrawRectangle(Square(v, size))
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw: fill %d vertices: %w", len(vertices), err)
	}
	return nil
}

func (r *Renderer) drawStatus(dc *gg.Context, st editor.Status) {
	dc.SetFont(r.face)
	dc.SetColor(Foreground.Color())
	dc.DrawString(StatusLine(st), 10, float64(dc.Height())-10)
}

// StatusLine formats the tool state for the overlay.
func StatusLine(st editor.Status) string {
	line := fmt.Sprintf("tool: %s | vertices %d/%d | edges %d/%d",
		st.Mode, st.VertexCount, st.VertexTarget, st.EdgeCount, st.EdgeTarget)
	if st.Pending {
		line += " | pick end vertex"
	}
	return line
}

// SavePNG renders f offscreen at width x height and writes it to path.
func (r *Renderer) SavePNG(path string, width, height int, f editor.Frame) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	dc := gg.NewContext(width, height)
	if err := r.Draw(dc, f); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("draw: save %s: %w", path, err)
	}
	editor.Logger().Info("draw: snapshot saved",
		slog.String("path", path),
		slog.Int("vertices", len(f.Vertices)),
		slog.Int("edges", len(f.Edges)/2))
	return nil
}
