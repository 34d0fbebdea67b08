// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/urlstate"
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate <fragment>",
	Short: "Regenerate a palette, keeping its locked colors",
	Long: `Regenerate takes a share fragment and rolls new colors for every
unlocked slot. Locked colors stay exactly where they are and seed the new
harmony run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		current := urlstate.Decode(args[0])
		if current == nil {
			fmt.Fprintf(os.Stderr, "Error: fragment is not a valid palette\n")
			os.Exit(1)
		}

		next := palette.Regenerate(current, newRNG(cmd))
		printPalette(next, color.ParseDisplayFormat(config.GetString("palette.format")))
	},
}

func init() {
	regenerateCmd.Flags().Int64("random-seed", 0, "Pin the random source for reproducible palettes")
	rootCmd.AddCommand(regenerateCmd)
}
