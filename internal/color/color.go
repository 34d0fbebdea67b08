// SPDX-License-Identifier: MIT

// Package color holds the color representations used across hueforge and
// the conversions between them. Hex is the canonical form; RGB and HSL are
// derived views of the same value.
package color

// RGB is a color as red/green/blue channels, each in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is a color as hue [0,360), saturation [0,100] and lightness [0,100].
// Hue is circular: 360 wraps to 0.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Color carries all three representations of one palette entry plus its
// lock flag. Lock state is palette bookkeeping, not part of the color value.
type Color struct {
	Hex    string `json:"hex"`
	RGB    RGB    `json:"rgb"`
	HSL    HSL    `json:"hsl"`
	Locked bool   `json:"locked"`
}

// FromHex builds a Color from a hex string, normalizing it to the canonical
// uppercase #RRGGBB form and deriving the RGB and HSL views.
func FromHex(hex string) Color {
	rgb := HexToRGB(hex)
	return Color{
		Hex: RGBToHex(rgb),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}

// FromRGB builds a Color from RGB channels.
func FromRGB(rgb RGB) Color {
	rgb = RGB{clampChannel(rgb.R), clampChannel(rgb.G), clampChannel(rgb.B)}
	return Color{
		Hex: RGBToHex(rgb),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}

// FromHSL builds a Color from HSL components.
func FromHSL(hsl HSL) Color {
	rgb := HSLToRGB(hsl)
	return Color{
		Hex: RGBToHex(rgb),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}
