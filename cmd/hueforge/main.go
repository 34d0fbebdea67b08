// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hueforge",
	Short: "hueforge - harmonious 5-color palette generator",
	Long: `hueforge generates, inspects and exports harmonious 5-color palettes.

Palettes are built from a seed color with one of five harmony rules
(analogous, complementary, triadic, tetradic, monochromatic). Individual
colors can be locked so regeneration keeps them in place. Every palette
has a compact share fragment that round-trips through decode.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
