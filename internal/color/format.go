// SPDX-License-Identifier: MIT
package color

import "fmt"

// DisplayFormat selects how a color renders as text.
type DisplayFormat string

const (
	FormatHex DisplayFormat = "hex"
	FormatRGB DisplayFormat = "rgb"
	FormatHSL DisplayFormat = "hsl"
)

// DisplayFormats lists the formats in cycle order for the UI.
func DisplayFormats() []DisplayFormat {
	return []DisplayFormat{FormatHex, FormatRGB, FormatHSL}
}

// ParseDisplayFormat maps a config or flag string to a DisplayFormat,
// falling back to hex for anything unrecognized.
func ParseDisplayFormat(s string) DisplayFormat {
	switch DisplayFormat(s) {
	case FormatRGB:
		return FormatRGB
	case FormatHSL:
		return FormatHSL
	default:
		return FormatHex
	}
}

// FormatValue renders a color in the requested display format:
// "#RRGGBB", "rgb(R, G, B)" or "hsl(H, S%, L%)".
func FormatValue(c Color, format DisplayFormat) string {
	switch format {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.RGB.R, c.RGB.G, c.RGB.B)
	case FormatHSL:
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.HSL.H, c.HSL.S, c.HSL.L)
	default:
		return c.Hex
	}
}
