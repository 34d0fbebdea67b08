// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/export"
	"github.com/hueforge/hueforge/internal/urlstate"
)

var exportCmd = &cobra.Command{
	Use:   "export <fragment>",
	Short: "Export a palette to JSON, CSS or PNG",
	Long: `Export takes a share fragment and writes the palette in one or more
formats. With no output flags the JSON form goes to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p := urlstate.Decode(args[0])
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: fragment is not a valid palette\n")
			os.Exit(1)
		}

		jsonPath, _ := cmd.Flags().GetString("json")
		cssPath, _ := cmd.Flags().GetString("css")
		pngPath, _ := cmd.Flags().GetString("png")

		if jsonPath == "" && cssPath == "" && pngPath == "" {
			raw, err := export.JSON(*p)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(raw))
			return
		}

		if jsonPath != "" {
			raw, err := export.JSON(*p)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error exporting JSON: %v\n", err)
				os.Exit(1)
			}
			if err := os.WriteFile(jsonPath, raw, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", jsonPath, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", jsonPath)
		}

		if cssPath != "" {
			if err := os.WriteFile(cssPath, []byte(export.CSS(*p)), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", cssPath, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", cssPath)
		}

		if pngPath != "" {
			f, err := os.Create(pngPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", pngPath, err)
				os.Exit(1)
			}
			width := config.GetInt("export.png_width")
			height := config.GetInt("export.png_height")
			if err := export.PNG(*p, f, width, height); err != nil {
				f.Close()
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", pngPath, err)
				os.Exit(1)
			}
			f.Close()
			fmt.Printf("Wrote %s\n", pngPath)
		}
	},
}

func init() {
	exportCmd.Flags().String("json", "", "Write palette JSON to this file")
	exportCmd.Flags().String("css", "", "Write CSS custom properties to this file")
	exportCmd.Flags().String("png", "", "Write a PNG swatch strip to this file")
	rootCmd.AddCommand(exportCmd)
}
