// SPDX-License-Identifier: MIT
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/contrast"
)

const (
	swatchWidth  = 16
	swatchHeight = 7
)

type uiStyles struct {
	title  lipgloss.Style
	hint   lipgloss.Style
	status lipgloss.Style
	badge  lipgloss.Style
	frame  lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ADD8")),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fd18a")),
		badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00ADD8")).
			Padding(1, 2),
	}
}

// swatchStyle fills a card with the swatch color and picks black or white
// text over it, whichever reads better.
func swatchStyle(c color.Color) lipgloss.Style {
	text := color.RGBToHex(contrast.TextColor(c.RGB))
	return lipgloss.NewStyle().
		Width(swatchWidth).
		Height(swatchHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(text))
}
