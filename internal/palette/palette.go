// SPDX-License-Identifier: MIT

// Package palette holds the five-color palette value and the lock-aware
// regeneration that replaces it. All operations return a new Palette; the
// caller owns the current value.
package palette

import (
	"math/rand"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/harmony"
)

// Size is the fixed palette length.
const Size = 5

// Palette is an ordered set of exactly Size colors. Harmony records the
// rule that produced it and is empty when unknown (hand-edited or decoded
// without one).
type Palette struct {
	Colors  []color.Color `json:"colors"`
	Harmony harmony.Rule  `json:"harmonyRule,omitempty"`
}

// New builds a palette from exactly Size colors, copying the slice.
func New(colors []color.Color, rule harmony.Rule) Palette {
	out := make([]color.Color, Size)
	copy(out, colors)
	return Palette{Colors: out, Harmony: rule}
}

// LockedCount reports how many colors are locked.
func (p Palette) LockedCount() int {
	n := 0
	for _, c := range p.Colors {
		if c.Locked {
			n++
		}
	}
	return n
}

// ToggleLock flips the lock flag at index i, leaving the color value
// untouched. Out-of-range indexes return the palette unchanged.
func (p Palette) ToggleLock(i int) Palette {
	if i < 0 || i >= len(p.Colors) {
		return p
	}
	out := p.clone()
	out.Colors[i].Locked = !out.Colors[i].Locked
	return out
}

// SetColor replaces the color at index i and marks it locked, the way a
// slider edit pins the slot it touched. Out-of-range indexes return the
// palette unchanged.
func (p Palette) SetColor(i int, c color.Color) Palette {
	if i < 0 || i >= len(p.Colors) {
		return p
	}
	out := p.clone()
	c.Locked = true
	out.Colors[i] = c
	return out
}

// Generate produces a fresh palette from a random seed color under a
// random rule, all slots unlocked.
func Generate(rng *rand.Rand) Palette {
	rule := harmony.RandomRule(rng)
	seed := harmony.RandomColor(rng)
	return New(harmony.Generate(seed, rule), rule)
}

// FromSeed produces a palette from a given seed color under the given
// rule, all slots unlocked.
func FromSeed(seed color.Color, rule harmony.Rule) Palette {
	return New(harmony.Generate(seed, rule), rule)
}

// Regenerate derives the next palette from the current one. Locked colors
// survive at their positions; unlocked slots are refilled from a harmony
// run seeded by the first locked color. With no locks (or no current
// palette) the result is entirely fresh. With every slot locked only the
// recorded rule changes.
//
// Collision avoidance between generated and locked colors is best effort:
// a generated color whose hex matches a locked color is skipped, and a
// random color fills in when the generated run is exhausted. Locked colors
// that already duplicate each other stay as they are.
func Regenerate(current *Palette, rng *rand.Rand) Palette {
	rule := harmony.RandomRule(rng)

	if current == nil || current.LockedCount() == 0 {
		seed := harmony.RandomColor(rng)
		return New(harmony.Generate(seed, rule), rule)
	}

	if current.LockedCount() == Size {
		out := current.clone()
		out.Harmony = rule
		return out
	}

	var seed color.Color
	for _, c := range current.Colors {
		if c.Locked {
			seed = c
			break
		}
	}
	generated := harmony.Generate(seed, rule)

	lockedHex := make(map[string]bool)
	for _, c := range current.Colors {
		if c.Locked {
			lockedHex[c.Hex] = true
		}
	}

	out := make([]color.Color, 0, Size)
	next := 0
	for _, cur := range current.Colors {
		if len(out) == Size {
			break
		}
		if cur.Locked {
			out = append(out, cur)
			continue
		}

		// Skip candidates that duplicate a locked color
		for next < len(generated) && lockedHex[generated[next].Hex] {
			next++
		}
		if next < len(generated) {
			c := generated[next]
			c.Locked = false
			out = append(out, c)
			next++
			continue
		}
		out = append(out, harmony.RandomColor(rng))
	}
	for len(out) < Size {
		out = append(out, harmony.RandomColor(rng))
	}

	return Palette{Colors: out, Harmony: rule}
}

func (p Palette) clone() Palette {
	out := make([]color.Color, len(p.Colors))
	copy(out, p.Colors)
	return Palette{Colors: out, Harmony: p.Harmony}
}
