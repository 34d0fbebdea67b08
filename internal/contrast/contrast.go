// SPDX-License-Identifier: MIT

// Package contrast implements the WCAG 2.0 relative luminance and contrast
// ratio math used for accessibility badges.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
package contrast

import (
	"math"

	"github.com/hueforge/hueforge/internal/color"
)

// WCAG thresholds for normal text.
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// RelativeLuminance returns the gamma-corrected, channel-weighted
// brightness of a color, between 0 (black) and 1 (white).
func RelativeLuminance(rgb color.RGB) float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio returns the contrast ratio between two colors, from 1 (identical)
// to 21 (black on white). Argument order does not matter.
func Ratio(a, b color.RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MeetsAA reports whether a ratio satisfies WCAG AA for normal text.
func MeetsAA(ratio float64) bool {
	return ratio >= ThresholdAA
}

// MeetsAAA reports whether a ratio satisfies WCAG AAA for normal text.
func MeetsAAA(ratio float64) bool {
	return ratio >= ThresholdAAA
}

// Level returns the badge label for a ratio: "AAA", "AA" or "Fail".
func Level(ratio float64) string {
	switch {
	case MeetsAAA(ratio):
		return "AAA"
	case MeetsAA(ratio):
		return "AA"
	default:
		return "Fail"
	}
}

// TextColor picks black or white for text over the given background,
// whichever contrasts more.
func TextColor(bg color.RGB) color.RGB {
	black := color.RGB{R: 0, G: 0, B: 0}
	white := color.RGB{R: 255, G: 255, B: 255}
	if Ratio(black, bg) >= Ratio(white, bg) {
		return black
	}
	return white
}

func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
