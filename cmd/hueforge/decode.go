// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/urlstate"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <fragment>",
	Short: "Decode a share fragment",
	Long:  "Decode a share fragment and print the palette it describes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := urlstate.Decode(args[0])
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: fragment is not a valid palette\n")
			os.Exit(1)
		}

		formatName, _ := cmd.Flags().GetString("format")
		printPalette(*p, color.ParseDisplayFormat(formatName))
	},
}

func init() {
	decodeCmd.Flags().String("format", "hex", "Display format (hex, rgb, hsl)")
	rootCmd.AddCommand(decodeCmd)
}
