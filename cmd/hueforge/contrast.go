// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/contrast"
	"github.com/hueforge/hueforge/internal/urlstate"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <fragment> | contrast <hexA> <hexB>",
	Short: "Check WCAG contrast",
	Long: `With a share fragment, print the contrast ratio and WCAG verdict for
each adjacent pair of colors. With two hex colors, check just that pair.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 2 {
			a := color.FromHex(args[0])
			b := color.FromHex(args[1])
			ratio := contrast.Ratio(a.RGB, b.RGB)
			fmt.Printf("%s on %s: %.2f (%s)\n", a.Hex, b.Hex, ratio, contrast.Level(ratio))
			return
		}

		p := urlstate.Decode(args[0])
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: fragment is not a valid palette\n")
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PAIR\tRATIO\tAA\tAAA")
		for i := 0; i+1 < len(p.Colors); i++ {
			a, b := p.Colors[i], p.Colors[i+1]
			ratio := contrast.Ratio(a.RGB, b.RGB)
			fmt.Fprintf(w, "%s / %s\t%.2f\t%s\t%s\n",
				a.Hex, b.Hex, ratio, passMark(contrast.MeetsAA(ratio)), passMark(contrast.MeetsAAA(ratio)))
		}
		w.Flush()
	},
}

func passMark(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func init() {
	rootCmd.AddCommand(contrastCmd)
}
