// SPDX-License-Identifier: MIT
package export

import (
	"fmt"
	"image"
	gocolor "image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/hueforge/hueforge/internal/palette"
)

const (
	// DefaultStripWidth and DefaultStripHeight size the exported swatch
	// strip when the caller passes no dimensions.
	DefaultStripWidth  = 1000
	DefaultStripHeight = 200
)

// PNG writes the palette as a horizontal strip of equal-width swatches.
// The strip is drawn one pixel per swatch and scaled up with nearest
// neighbor, which keeps swatch edges hard.
func PNG(p palette.Palette, w io.Writer, width, height int) error {
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette has no colors")
	}
	if width <= 0 {
		width = DefaultStripWidth
	}
	if height <= 0 {
		height = DefaultStripHeight
	}

	base := image.NewRGBA(image.Rect(0, 0, len(p.Colors), 1))
	for i, c := range p.Colors {
		base.Set(i, 0, gocolor.RGBA{
			R: uint8(c.RGB.R),
			G: uint8(c.RGB.G),
			B: uint8(c.RGB.B),
			A: 255,
		})
	}

	strip := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(strip, strip.Bounds(), base, base.Bounds(), draw.Src, nil)

	if err := png.Encode(w, strip); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
