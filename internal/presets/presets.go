// SPDX-License-Identifier: MIT

// Package presets provides named seed colors for starting a palette from
// something other than a random draw.
package presets

// Seed is a named starting color
type Seed struct {
	Name string // "slate", "indigo", etc.
	Hex  string // hex color #RRGGBB
}

// GetSeed returns a seed by name
func GetSeed(name string) *Seed {
	seeds := map[string]*Seed{
		"slate": {
			Name: "slate",
			Hex:  "#64748b",
		},
		"indigo": {
			Name: "indigo",
			Hex:  "#4f46e5",
		},
		"rose": {
			Name: "rose",
			Hex:  "#e11d48",
		},
		"emerald": {
			Name: "emerald",
			Hex:  "#059669",
		},
		"navy": {
			Name: "navy",
			Hex:  "#000080",
		},
		"purple": {
			Name: "purple",
			Hex:  "#a855f7",
		},
		"teal": {
			Name: "teal",
			Hex:  "#14b8a6",
		},
		"amber": {
			Name: "amber",
			Hex:  "#f59e0b",
		},
		"crimson": {
			Name: "crimson",
			Hex:  "#c41e3a",
		},
		"forest": {
			Name: "forest",
			Hex:  "#22c55e",
		},
		"sky": {
			Name: "sky",
			Hex:  "#3b82f6",
		},
		"neutral": {
			Name: "neutral",
			Hex:  "#6b7280",
		},
	}

	return seeds[name]
}

// ListSeeds returns all available seeds in order
func ListSeeds() []*Seed {
	names := []string{
		"slate", "indigo", "rose", "emerald", "navy", "purple",
		"teal", "amber", "crimson", "forest", "sky", "neutral",
	}
	var seeds []*Seed
	for _, name := range names {
		if s := GetSeed(name); s != nil {
			seeds = append(seeds, s)
		}
	}
	return seeds
}
