// SPDX-License-Identifier: MIT
package export

import (
	"fmt"
	"strings"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/contrast"
	"github.com/hueforge/hueforge/internal/palette"
)

// CSS renders a palette as a :root block of custom properties. Each swatch
// gets its hex value plus a readable text color (black or white, whichever
// contrasts more) for building labels over it.
func CSS(p palette.Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range p.Colors {
		text := color.RGBToHex(contrast.TextColor(c.RGB))
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c.Hex)
		fmt.Fprintf(&b, "  --color-%d-text: %s;\n", i+1, text)
	}
	b.WriteString("}\n")

	b.WriteString(`
/* Swatch helpers */
`)
	for i := range p.Colors {
		fmt.Fprintf(&b, ".swatch-%d {\n", i+1)
		fmt.Fprintf(&b, "  background-color: var(--color-%d);\n", i+1)
		fmt.Fprintf(&b, "  color: var(--color-%d-text);\n", i+1)
		b.WriteString("}\n")
	}
	return b.String()
}
