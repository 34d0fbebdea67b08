package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/harmony"
	"github.com/hueforge/hueforge/internal/palette"
)

func testPalette(rule harmony.Rule) palette.Palette {
	hexes := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF"}
	colors := make([]color.Color, 0, len(hexes))
	for _, h := range hexes {
		colors = append(colors, color.FromHex(h))
	}
	return palette.New(colors, rule)
}

func TestBuildJSONFormats(t *testing.T) {
	p := testPalette(harmony.Triadic)
	out := BuildJSON(p)

	if len(out.Colors) != palette.Size {
		t.Fatalf("got %d colors", len(out.Colors))
	}
	first := out.Colors[0]
	if first.Hex != "#FF0000" {
		t.Errorf("hex = %s", first.Hex)
	}
	if first.RGB != "rgb(255, 0, 0)" {
		t.Errorf("rgb = %s", first.RGB)
	}
	if first.HSL != "hsl(0, 100%, 50%)" {
		t.Errorf("hsl = %s", first.HSL)
	}
	if out.HarmonyRule != "triadic" {
		t.Errorf("rule = %s", out.HarmonyRule)
	}
}

func TestJSONOmitsEmptyRule(t *testing.T) {
	raw, err := JSON(testPalette(""))
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if strings.Contains(string(raw), "harmonyRule") {
		t.Errorf("empty rule should be omitted:\n%s", raw)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
}

func TestJSONIncludesLockFlags(t *testing.T) {
	p := testPalette(harmony.Analogous)
	p = p.ToggleLock(2)
	out := BuildJSON(p)
	if !out.Colors[2].Locked {
		t.Error("lock flag dropped in export")
	}
}

func TestCSSContainsAllSwatches(t *testing.T) {
	css := CSS(testPalette(harmony.Analogous))
	if !strings.HasPrefix(css, ":root {") {
		t.Errorf("css should open with :root block:\n%s", css)
	}
	for _, want := range []string{
		"--color-1: #FF0000;",
		"--color-5: #FF00FF;",
		"--color-3-text: #FFFFFF;",
		".swatch-3 {",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("css missing %q", want)
		}
	}
}

func TestPNGDimensionsAndPixels(t *testing.T) {
	var buf bytes.Buffer
	p := testPalette("")
	if err := PNG(p, &buf, 500, 100); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 500 || bounds.Dy() != 100 {
		t.Fatalf("bounds = %v, want 500x100", bounds)
	}

	// Center of the first swatch is pure red
	r, g, b, _ := img.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("first swatch = %d,%d,%d, want 255,0,0", r>>8, g>>8, b>>8)
	}
	// Center of the last swatch is magenta
	r, g, b, _ = img.At(450, 50).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("last swatch = %d,%d,%d, want 255,0,255", r>>8, g>>8, b>>8)
	}
}

func TestPNGDefaultsApplied(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(testPalette(""), &buf, 0, 0); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != DefaultStripWidth || img.Bounds().Dy() != DefaultStripHeight {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestPNGEmptyPalette(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(palette.Palette{}, &buf, 100, 100); err == nil {
		t.Error("empty palette should error")
	}
}
