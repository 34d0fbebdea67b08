// SPDX-License-Identifier: MIT
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB parses a 6-digit hex color, with or without a leading #.
// Unparseable channel groups read as 0; the result is always in range.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	return RGB{
		R: hexChannel(hex, 0),
		G: hexChannel(hex, 2),
		B: hexChannel(hex, 4),
	}
}

// RGBToHex renders RGB channels as an uppercase #RRGGBB string. Channels
// are rounded and clamped first, so any RGB value produces a valid hex.
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X",
		clampChannel(rgb.R), clampChannel(rgb.G), clampChannel(rgb.B))
}

// RGBToHSL converts RGB to HSL using the standard min/max/delta algorithm.
// Components are rounded to integers: hue in [0,360), saturation and
// lightness in [0,100].
func RGBToHSL(rgb RGB) HSL {
	r := float64(clampChannel(rgb.R)) / 255.0
	g := float64(clampChannel(rgb.G)) / 255.0
	b := float64(clampChannel(rgb.B)) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h*360)) % 360
	if hue < 0 {
		hue += 360
	}
	return HSL{
		H: hue,
		S: clampPercent(int(math.Round(s * 100))),
		L: clampPercent(int(math.Round(l * 100))),
	}
}

// HSLToRGB converts HSL to RGB via piecewise hue interpolation. Saturation
// zero short-circuits to the achromatic gray for the given lightness.
func HSLToRGB(hsl HSL) RGB {
	h := normalizeHue(float64(hsl.H)) / 360.0
	s := float64(clampPercent(hsl.S)) / 100.0
	l := float64(clampPercent(hsl.L)) / 100.0

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: clampChannel(v), G: clampChannel(v), B: clampChannel(v)}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clampChannel(int(math.Round(hueToChannel(p, q, h+1.0/3.0) * 255))),
		G: clampChannel(int(math.Round(hueToChannel(p, q, h) * 255))),
		B: clampChannel(int(math.Round(hueToChannel(p, q, h-1.0/3.0) * 255))),
	}
}

// HexToHSL converts a hex string directly to HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts HSL directly to a hex string.
func HSLToHex(hsl HSL) string {
	return RGBToHex(HSLToRGB(hsl))
}

// hueToChannel maps a fractional position around the hue circle to one
// channel value between p and q.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// hexChannel reads the 2-digit group starting at offset as a base-16 value.
func hexChannel(hex string, offset int) int {
	if len(hex) < offset+2 {
		return 0
	}
	v, err := strconv.ParseUint(hex[offset:offset+2], 16, 16)
	if err != nil {
		return 0
	}
	return clampChannel(int(v))
}

// normalizeHue wraps any hue, including negative offsets, into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
