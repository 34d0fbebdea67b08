package color

import (
	"fmt"
	"testing"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex  string
		want RGB
	}{
		{"#FF0000", RGB{255, 0, 0}},
		{"00FF00", RGB{0, 255, 0}},
		{"#0000ff", RGB{0, 0, 255}},
		{"#FFFFFF", RGB{255, 255, 255}},
		{"#000000", RGB{0, 0, 0}},
		{"#1A2B3C", RGB{26, 43, 60}},
	}

	for _, tt := range tests {
		got := HexToRGB(tt.hex)
		if got != tt.want {
			t.Errorf("HexToRGB(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestHexToRGBMalformed(t *testing.T) {
	// Bad input never panics and always lands in range
	for _, hex := range []string{"", "#", "zzzzzz", "#12", "not a color"} {
		got := HexToRGB(hex)
		for _, ch := range []int{got.R, got.G, got.B} {
			if ch < 0 || ch > 255 {
				t.Errorf("HexToRGB(%q) channel out of range: %v", hex, got)
			}
		}
	}
}

func TestRGBToHexClamps(t *testing.T) {
	if got := RGBToHex(RGB{300, -20, 128}); got != "#FF0080" {
		t.Errorf("RGBToHex clamp = %s, want #FF0080", got)
	}
}

func TestHexRoundTripExact(t *testing.T) {
	// Hex -> RGB -> hex is exact for every canonical hex value we test
	hexes := []string{"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
		"#123456", "#ABCDEF", "#7F7F7F", "#010203", "#FEDCBA"}
	for _, hex := range hexes {
		if got := RGBToHex(HexToRGB(hex)); got != hex {
			t.Errorf("round-trip %s -> %s", hex, got)
		}
	}
}

func TestRGBToHSLKnownValues(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{0, 0, 0}, HSL{0, 0, 0}},
		{RGB{128, 128, 128}, HSL{0, 0, 50}},
		{RGB{255, 255, 0}, HSL{60, 100, 50}},
		{RGB{0, 255, 255}, HSL{180, 100, 50}},
	}

	for _, tt := range tests {
		got := RGBToHSL(tt.rgb)
		if got != tt.want {
			t.Errorf("RGBToHSL(%v) = %v, want %v", tt.rgb, got, tt.want)
		}
	}
}

func TestHSLToRGBAchromatic(t *testing.T) {
	tests := []struct {
		hsl  HSL
		want RGB
	}{
		{HSL{0, 0, 0}, RGB{0, 0, 0}},
		{HSL{0, 0, 100}, RGB{255, 255, 255}},
		{HSL{200, 0, 50}, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		got := HSLToRGB(tt.hsl)
		if got != tt.want {
			t.Errorf("HSLToRGB(%v) = %v, want %v", tt.hsl, got, tt.want)
		}
	}
}

func TestHSLToRGBNegativeHueWraps(t *testing.T) {
	a := HSLToRGB(HSL{-120, 100, 50})
	b := HSLToRGB(HSL{240, 100, 50})
	if a != b {
		t.Errorf("hue -120 gave %v, hue 240 gave %v", a, b)
	}
}

func TestRGBHSLRoundTripTolerance(t *testing.T) {
	// RGB -> HSL -> RGB stays within 2 per channel
	samples := []RGB{
		{255, 0, 0}, {12, 200, 89}, {130, 130, 131}, {1, 2, 3},
		{254, 254, 253}, {90, 45, 180}, {33, 66, 99}, {200, 100, 50},
	}
	for step := 0; step < 256; step += 17 {
		samples = append(samples, RGB{step, 255 - step, (step * 3) % 256})
	}

	for _, rgb := range samples {
		back := HSLToRGB(RGBToHSL(rgb))
		if absInt(back.R-rgb.R) > 2 || absInt(back.G-rgb.G) > 2 || absInt(back.B-rgb.B) > 2 {
			t.Errorf("RGB round-trip drift: %v -> %v", rgb, back)
		}
	}
}

func TestHSLRGBRoundTripTolerance(t *testing.T) {
	// HSL -> RGB -> HSL stays within 2 per component away from the
	// degenerate bands (low saturation, extreme lightness) where hue
	// is underdetermined.
	for h := 0; h < 360; h += 30 {
		for _, s := range []int{20, 50, 80, 100} {
			for _, l := range []int{20, 40, 50, 60, 80} {
				in := HSL{h, s, l}
				out := RGBToHSL(HSLToRGB(in))

				hueDiff := absInt(out.H - in.H)
				if hueDiff > 180 {
					hueDiff = 360 - hueDiff
				}
				if hueDiff > 2 {
					t.Errorf("hue drift: %v -> %v", in, out)
				}
				if absInt(out.S-in.S) > 2 || absInt(out.L-in.L) > 2 {
					t.Errorf("s/l drift: %v -> %v", in, out)
				}
			}
		}
	}
}

func TestFromHexCanonicalizes(t *testing.T) {
	c := FromHex("ff8800")
	if c.Hex != "#FF8800" {
		t.Errorf("canonical hex = %s, want #FF8800", c.Hex)
	}
	if c.RGB != (RGB{255, 136, 0}) {
		t.Errorf("rgb = %v", c.RGB)
	}
	if c.Locked {
		t.Error("fresh color should be unlocked")
	}
}

func TestFromHSLRepresentationsAgree(t *testing.T) {
	c := FromHSL(HSL{210, 64, 45})
	fromHex := HexToRGB(c.Hex)
	if fromHex != c.RGB {
		t.Errorf("hex %s decodes to %v, rgb field is %v", c.Hex, fromHex, c.RGB)
	}
	if absInt(c.HSL.S-64) > 2 || absInt(c.HSL.L-45) > 2 {
		t.Errorf("hsl drifted: %v", c.HSL)
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0}, {360, 0}, {365, 5}, {-30, 330}, {-360, 0}, {720, 0}, {-400, 320},
	}
	for _, tt := range tests {
		if got := normalizeHue(tt.in); got != tt.want {
			t.Errorf("normalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func ExampleRGBToHex() {
	fmt.Println(RGBToHex(RGB{255, 136, 0}))
	// Output: #FF8800
}
