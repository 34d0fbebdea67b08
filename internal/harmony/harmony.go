// SPDX-License-Identifier: MIT

// Package harmony derives sets of five related colors from a single seed
// using classic color-wheel rules.
package harmony

import (
	"math/rand"

	"github.com/hueforge/hueforge/internal/color"
)

// Rule names a harmony strategy. The set is closed; Generate handles
// every member explicitly.
type Rule string

const (
	Analogous     Rule = "analogous"
	Complementary Rule = "complementary"
	Triadic       Rule = "triadic"
	Tetradic      Rule = "tetradic"
	Monochromatic Rule = "monochromatic"
)

// PaletteSize is the number of colors every rule produces.
const PaletteSize = 5

// Safe bands keep generated colors away from near-black, near-white and
// near-gray where hue stops reading visually.
const (
	minLightness  = 20
	maxLightness  = 80
	minSaturation = 10
	maxSaturation = 90
)

// Rules lists all harmony rules in a stable order.
func Rules() []Rule {
	return []Rule{Analogous, Complementary, Triadic, Tetradic, Monochromatic}
}

// ParseRule maps a string to a known Rule. The second return is false for
// anything outside the closed set.
func ParseRule(s string) (Rule, bool) {
	switch Rule(s) {
	case Analogous, Complementary, Triadic, Tetradic, Monochromatic:
		return Rule(s), true
	}
	return "", false
}

// RandomRule picks one of the five rules uniformly.
func RandomRule(rng *rand.Rand) Rule {
	rules := Rules()
	return rules[rng.Intn(len(rules))]
}

// RandomColor returns a uniformly random color, unlocked.
func RandomColor(rng *rand.Rand) color.Color {
	return color.FromRGB(color.RGB{
		R: rng.Intn(256),
		G: rng.Intn(256),
		B: rng.Intn(256),
	})
}

// Generate produces five unlocked colors related to the seed under the
// given rule. Every rule yields exactly five valid colors for any seed.
func Generate(seed color.Color, rule Rule) []color.Color {
	hsl := seed.HSL
	switch rule {
	case Complementary:
		return complementary(hsl)
	case Triadic:
		return triadic(hsl)
	case Tetradic:
		return tetradic(hsl)
	case Monochromatic:
		return monochromatic(hsl)
	case Analogous:
		return analogous(hsl)
	default:
		return analogous(hsl)
	}
}

// analogous spreads hues across a 60° arc centered on the seed.
func analogous(hsl color.HSL) []color.Color {
	offsets := []int{-30, -15, 0, 15, 30}
	out := make([]color.Color, 0, PaletteSize)
	for _, off := range offsets {
		out = append(out, derive(hsl, off, 0, 0))
	}
	return out
}

// complementary keeps three lightness variants of the seed hue and two of
// its 180° complement.
func complementary(hsl color.HSL) []color.Color {
	return []color.Color{
		derive(hsl, 0, 0, -15),
		derive(hsl, 0, 0, 0),
		derive(hsl, 0, 0, 15),
		derive(hsl, 180, 0, 0),
		derive(hsl, 180, 0, 15),
	}
}

// triadic uses three hues 120° apart with some lightness variation.
func triadic(hsl color.HSL) []color.Color {
	return []color.Color{
		derive(hsl, 0, 0, 0),
		derive(hsl, 0, 0, 15),
		derive(hsl, 120, 0, 0),
		derive(hsl, 240, 0, 0),
		derive(hsl, 120, 0, -15),
	}
}

// tetradic uses four hues 90° apart plus a lighter copy of the seed.
func tetradic(hsl color.HSL) []color.Color {
	return []color.Color{
		derive(hsl, 0, 0, 0),
		derive(hsl, 90, 0, 0),
		derive(hsl, 180, 0, 0),
		derive(hsl, 270, 0, 0),
		derive(hsl, 0, 0, 15),
	}
}

// monochromatic holds the hue and walks saturation and lightness from
// darker and duller to lighter and more vivid.
func monochromatic(hsl color.HSL) []color.Color {
	out := make([]color.Color, 0, PaletteSize)
	for i := 0; i < PaletteSize; i++ {
		sDelta := -20 + 10*i
		lDelta := -20 + 10*i
		out = append(out, derive(hsl, 0, sDelta, lDelta))
	}
	return out
}

// derive builds one color from the seed HSL with a hue offset and
// saturation/lightness deltas, clamped into the safe bands. Hue wraps
// through [0,360).
func derive(hsl color.HSL, hueOffset, sDelta, lDelta int) color.Color {
	h := ((hsl.H+hueOffset)%360 + 360) % 360
	return color.FromHSL(color.HSL{
		H: h,
		S: clampBand(hsl.S+sDelta, minSaturation, maxSaturation),
		L: clampBand(hsl.L+lDelta, minLightness, maxLightness),
	})
}

func clampBand(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
