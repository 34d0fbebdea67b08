// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/tui"
	"github.com/hueforge/hueforge/internal/urlstate"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [fragment]",
	Short: "Interactive palette editor",
	Long: `Open the interactive terminal editor. Starts from a fresh random
palette, or from a share fragment when one is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rng := newRNG(cmd)

		var initial palette.Palette
		if len(args) == 1 {
			decoded := urlstate.Decode(args[0])
			if decoded == nil {
				fmt.Fprintf(os.Stderr, "Error: fragment is not a valid palette\n")
				os.Exit(1)
			}
			initial = *decoded
		} else {
			initial = palette.Generate(rng)
		}

		err := tui.Run(tui.Options{
			Initial:      initial,
			RNG:          rng,
			Format:       color.ParseDisplayFormat(config.GetString("palette.format")),
			ShowHints:    config.GetBool("ui.show_hints"),
			ShowContrast: config.GetBool("ui.show_contrast"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tuiCmd.Flags().Int64("random-seed", 0, "Pin the random source for reproducible palettes")
	rootCmd.AddCommand(tuiCmd)
}
