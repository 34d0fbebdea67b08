// SPDX-License-Identifier: MIT

// Package export renders a palette to the formats users take out of
// hueforge: JSON, a CSS custom-property sheet and a PNG swatch strip.
package export

import (
	"encoding/json"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/palette"
)

// ColorJSON is one palette entry with all three formatted renderings.
type ColorJSON struct {
	Hex    string `json:"hex"`
	RGB    string `json:"rgb"`
	HSL    string `json:"hsl"`
	Locked bool   `json:"locked"`
}

// PaletteJSON mirrors a palette for export. HarmonyRule is omitted when
// the palette has no recorded rule.
type PaletteJSON struct {
	Colors      []ColorJSON `json:"colors"`
	HarmonyRule string      `json:"harmonyRule,omitempty"`
}

// BuildJSON converts a palette to its export structure.
func BuildJSON(p palette.Palette) PaletteJSON {
	out := PaletteJSON{
		Colors:      make([]ColorJSON, 0, len(p.Colors)),
		HarmonyRule: string(p.Harmony),
	}
	for _, c := range p.Colors {
		out.Colors = append(out.Colors, ColorJSON{
			Hex:    color.FormatValue(c, color.FormatHex),
			RGB:    color.FormatValue(c, color.FormatRGB),
			HSL:    color.FormatValue(c, color.FormatHSL),
			Locked: c.Locked,
		})
	}
	return out
}

// JSON renders a palette as indented JSON.
func JSON(p palette.Palette) ([]byte, error) {
	return json.MarshalIndent(BuildJSON(p), "", "  ")
}
