// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/presets"
)

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "List named seed colors",
	Long:  "List the preset seed colors usable with generate --seed",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tHEX")
		for _, s := range presets.ListSeeds() {
			fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Hex)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(seedsCmd)
}
