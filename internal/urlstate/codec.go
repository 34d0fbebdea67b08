// SPDX-License-Identifier: MIT

// Package urlstate encodes a palette to the compact fragment string used
// for sharing, and decodes it back. The fragment is the only durable
// representation of a palette:
//
//	colors=RRGGBB,RRGGBB,RRGGBB,RRGGBB,RRGGBB&locks=01010&harmony=triadic
package urlstate

import (
	"regexp"
	"strings"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/harmony"
	"github.com/hueforge/hueforge/internal/palette"
)

var hexToken = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Encode renders a palette as its share fragment. Color and lock positions
// follow palette order; the harmony key is omitted when no rule is set.
func Encode(p palette.Palette) string {
	hexes := make([]string, 0, len(p.Colors))
	locks := make([]byte, 0, len(p.Colors))
	for _, c := range p.Colors {
		hexes = append(hexes, strings.TrimPrefix(c.Hex, "#"))
		if c.Locked {
			locks = append(locks, '1')
		} else {
			locks = append(locks, '0')
		}
	}

	var b strings.Builder
	b.WriteString("colors=")
	b.WriteString(strings.Join(hexes, ","))
	b.WriteString("&locks=")
	b.Write(locks)
	if p.Harmony != "" {
		b.WriteString("&harmony=")
		b.WriteString(string(p.Harmony))
	}
	return b.String()
}

// Decode parses a share fragment back into a palette. A leading # is
// tolerated. It returns nil when the fragment is unusable: empty input,
// no colors key, a color count other than five, or a malformed hex token.
// Bad locks or harmony values degrade softly to all-unlocked and no rule.
// Decode never panics.
func Decode(fragment string) (p *palette.Palette) {
	defer func() {
		if recover() != nil {
			p = nil
		}
	}()

	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if fragment == "" {
		return nil
	}

	fields := make(map[string]string)
	for _, pair := range strings.Split(fragment, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		fields[key] = value
	}

	tokens := strings.Split(fields["colors"], ",")
	if fields["colors"] == "" || len(tokens) != palette.Size {
		return nil
	}

	colors := make([]color.Color, 0, palette.Size)
	for _, tok := range tokens {
		if !hexToken.MatchString(tok) {
			return nil
		}
		colors = append(colors, color.FromHex(tok))
	}

	// locks is soft: anything but exactly five 0/1 characters means
	// everything stays unlocked
	if locks := fields["locks"]; validLocks(locks) {
		for i := range colors {
			colors[i].Locked = locks[i] == '1'
		}
	}

	var rule harmony.Rule
	if r, ok := harmony.ParseRule(fields["harmony"]); ok {
		rule = r
	}

	out := palette.New(colors, rule)
	return &out
}

func validLocks(locks string) bool {
	if len(locks) != palette.Size {
		return false
	}
	for i := 0; i < len(locks); i++ {
		if locks[i] != '0' && locks[i] != '1' {
			return false
		}
	}
	return true
}
