// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/harmony"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/presets"
	"github.com/hueforge/hueforge/internal/urlstate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh palette",
	Long:  "Generate a harmonious 5-color palette from a random or given seed",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rng := newRNG(cmd)
		ruleName, _ := cmd.Flags().GetString("rule")
		seedArg, _ := cmd.Flags().GetString("seed")
		formatName, _ := cmd.Flags().GetString("format")

		if ruleName == "" {
			ruleName = config.GetString("palette.rule")
		}
		if formatName == "" {
			formatName = config.GetString("palette.format")
		}

		var rule harmony.Rule
		if ruleName != "" {
			parsed, ok := harmony.ParseRule(ruleName)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown rule %q (known: %v)\n", ruleName, harmony.Rules())
				os.Exit(1)
			}
			rule = parsed
		} else {
			rule = harmony.RandomRule(rng)
		}

		var p palette.Palette
		if seedArg != "" {
			seed, err := resolveSeed(seedArg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			p = palette.FromSeed(seed, rule)
		} else {
			p = palette.FromSeed(harmony.RandomColor(rng), rule)
		}

		printPalette(p, color.ParseDisplayFormat(formatName))
	},
}

// resolveSeed accepts a hex color or a preset name.
func resolveSeed(arg string) (color.Color, error) {
	if s := presets.GetSeed(arg); s != nil {
		return color.FromHex(s.Hex), nil
	}
	if len(arg) == 6 || len(arg) == 7 {
		return color.FromHex(arg), nil
	}
	return color.Color{}, fmt.Errorf("seed %q is neither a hex color nor a preset name", arg)
}

// printPalette writes the palette table and its share fragment.
func printPalette(p palette.Palette, format color.DisplayFormat) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCOLOR\tLOCKED")
	for i, c := range p.Colors {
		locked := "-"
		if c.Locked {
			locked = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, color.FormatValue(c, format), locked)
	}
	w.Flush()

	if p.Harmony != "" {
		fmt.Printf("\nRule: %s\n", p.Harmony)
	}
	fmt.Printf("Share: %s\n", urlstate.Encode(p))
}

// newRNG returns the command's random source; --random-seed pins it for
// reproducible output.
func newRNG(cmd *cobra.Command) *rand.Rand {
	if seed, err := cmd.Flags().GetInt64("random-seed"); err == nil && cmd.Flags().Changed("random-seed") {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func init() {
	generateCmd.Flags().String("rule", "", "Harmony rule (analogous, complementary, triadic, tetradic, monochromatic)")
	generateCmd.Flags().String("seed", "", "Seed color as hex or preset name")
	generateCmd.Flags().String("format", "", "Display format (hex, rgb, hsl)")
	generateCmd.Flags().Int64("random-seed", 0, "Pin the random source for reproducible palettes")
	rootCmd.AddCommand(generateCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	configPath := os.Getenv("HUEFORGE_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = home + "/.hueforge/config.yaml"
	}

	return config.InitConfig(configPath)
}
