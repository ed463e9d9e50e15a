// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command polydraw draws a graph by hand: place vertices with the mouse, then
// connect them with edges.
//
// Keys:
//
//	g  vertex tool: each left click places a vertex
//	f  edge tool: click a start vertex, then an end vertex
//
// The vertex and edge targets are read from standard input at startup.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/polydraw/draw"
	"github.com/gogpu/polydraw/editor"
	"github.com/gogpu/polydraw/prompt"
)

type config struct {
	width, height int
	title         string
	vertexSize    int
	snapshot      string
	overlay       bool
	fixPending    bool
	lastGuard     bool
	debug         bool
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "window width")
	flag.IntVar(&cfg.height, "height", 600, "window height")
	flag.StringVar(&cfg.title, "title", "Polygon Drawer", "window title")
	flag.IntVar(&cfg.vertexSize, "vertex-size", editor.DefaultVertexSize, "vertex marker and hit-box size in pixels")
	flag.StringVar(&cfg.snapshot, "snapshot", "", "write the final drawing to this PNG file on exit")
	flag.BoolVar(&cfg.overlay, "overlay", true, "show the tool status line")
	flag.BoolVar(&cfg.fixPending, "fix-pending", false, "discard a pending edge start when the edge tool is reselected")
	flag.BoolVar(&cfg.lastGuard, "last-vertex-guard", false, "never end an edge on the most recently placed vertex")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()
	return cfg
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	editor.SetLogger(l)
	gg.SetLogger(l)
}

func newRenderer(cfg config) *draw.Renderer {
	if !cfg.overlay {
		return draw.NewRenderer()
	}
	face, err := draw.LoadFace(14, draw.FontCandidates...)
	if err != nil {
		editor.Logger().Warn("polydraw: status line disabled", slog.Any("err", err))
		return draw.NewRenderer()
	}
	return draw.NewRenderer(draw.WithFace(face))
}

func main() {
	cfg := parseFlags()
	setupLogging(cfg.debug)

	targets, err := prompt.ReadTargets(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := editor.New(targets.Vertices, targets.Edges,
		editor.WithVertexSize(cfg.vertexSize),
		editor.WithEdgeToolResetsPending(cfg.fixPending),
		editor.WithLastVertexGuard(cfg.lastGuard))
	s := newSession(state, newRenderer(cfg), os.Stdout, cfg.width, cfg.height)

	// gogpu opens the window, the GPU device and its own renderer inside Run,
	// so a failure of any of them lands here.
	if err := runWindow(cfg, s); err != nil {
		fmt.Fprintf(os.Stdout, "Window could not be created! Error: %v\n", err)
		os.Exit(1)
	}
}
