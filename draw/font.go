// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
)

// ErrNoFont is returned by LoadFace when no candidate font file exists.
var ErrNoFont = errors.New("draw: no system font found")

// FontCandidates lists TTF files tried by LoadFace, in order.
// TTC collections are not supported.
var FontCandidates = []string{
	// Windows
	"C:\\Windows\\Fonts\\arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	// macOS
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Monaco.ttf",
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
}

// LoadFace loads the first available font from candidates at size points.
func LoadFace(size float64, candidates ...string) (text.Face, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		source, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("draw: load font %s: %w", path, err)
		}
		return source.Face(size), nil
	}
	return nil, ErrNoFont
}
