// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/polydraw/editor"
)

// runWindow opens the window and drives s until the window is closed.
// The returned error comes from App.Run: window, GPU device or gogpu renderer
// creation failed. Key and mouse callbacks run on gogpu's event thread,
// OnDraw and OnClose on its render thread; gogpu serializes them.
func runWindow(cfg config, s *session) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.title).
		WithSize(cfg.width, cfg.height).
		WithContinuousRender(false))

	s.redraw = app.RequestRedraw

	var canvas *ggcanvas.Canvas
	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		s.resized(w, h)

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			canvas, err = newCanvas(provider, w, h)
			if err != nil {
				// Only invalid canvas arguments fail here; device errors surface from Run.
				fmt.Fprintf(os.Stdout, "Renderer could not be created! Error: %v\n", err)
				os.Exit(1)
			}
			if canvas == nil {
				return
			}
			editor.Logger().Info("polydraw: canvas created", slog.Int("width", w), slog.Int("height", h))
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				editor.Logger().Warn("polydraw: resize failed", slog.Any("err", err))
			}
		}

		if err := canvas.Draw(func(cc *gg.Context) {
			if err := s.renderer.Draw(cc, s.frame); err != nil {
				editor.Logger().Warn("polydraw: draw failed", slog.Any("err", err))
			}
		}); err != nil {
			editor.Logger().Warn("polydraw: canvas draw failed", slog.Any("err", err))
		}

		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			editor.Logger().Warn("polydraw: present failed", slog.Any("err", err))
		}
	})

	events := app.EventSource()
	events.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if ev, ok := keyEvent(key); ok {
			s.handle(ev)
		}
	})
	events.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		if ev, ok := buttonEvent(button, x, y); ok {
			s.handle(ev)
		}
	})

	app.OnClose(func() {
		if err := s.finish(cfg.snapshot); err != nil {
			editor.Logger().Warn("polydraw: snapshot failed", slog.Any("err", err))
		}
		if canvas != nil {
			_ = canvas.Close()
		}
	})

	return app.Run()
}

// newCanvas creates the window canvas. It returns a nil canvas and no error
// while the GPU device is not ready yet; the caller skips that frame.
func newCanvas(provider gpucontext.DeviceProvider, width, height int) (*ggcanvas.Canvas, error) {
	if provider == nil {
		return nil, nil
	}
	return ggcanvas.New(provider, width, height)
}
