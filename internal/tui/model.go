// SPDX-License-Identifier: MIT

// Package tui is the interactive terminal front end. It renders the five
// swatches and turns keystrokes into the pure palette operations; the
// current palette value lives here, never in the core packages.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/contrast"
	"github.com/hueforge/hueforge/internal/harmony"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/urlstate"
)

// Options configure the program before it starts.
type Options struct {
	Initial      palette.Palette
	RNG          *rand.Rand
	Format       color.DisplayFormat
	ShowHints    bool
	ShowContrast bool
}

// Model is the bubbletea model for the palette screen.
type Model struct {
	pal          palette.Palette
	rng          *rand.Rand
	format       color.DisplayFormat
	input        textinput.Model
	entering     bool
	status       string
	width        int
	height       int
	showHints    bool
	showContrast bool
	styles       uiStyles
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// New builds the initial model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "┃ "
	ti.Placeholder = "seed hex, e.g. #FF8800"
	ti.CharLimit = 7
	ti.Width = 24

	format := opts.Format
	if format == "" {
		format = color.FormatHex
	}

	return Model{
		pal:          opts.Initial,
		rng:          opts.RNG,
		format:       format,
		input:        ti,
		showHints:    opts.ShowHints,
		showContrast: opts.ShowContrast,
		styles:       defaultStyles(),
	}
}

// Palette exposes the current value, mainly for tests.
func (m Model) Palette() palette.Palette {
	return m.pal
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.entering {
			return m.updateSeedEntry(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "g":
		m.pal = palette.Regenerate(&m.pal, m.rng)
		m.status = fmt.Sprintf("regenerated (%s)", m.pal.Harmony)
	case "1", "2", "3", "4", "5":
		i := int(msg.String()[0] - '1')
		m.pal = m.pal.ToggleLock(i)
		if m.pal.Colors[i].Locked {
			m.status = fmt.Sprintf("locked %s", m.pal.Colors[i].Hex)
		} else {
			m.status = fmt.Sprintf("unlocked %s", m.pal.Colors[i].Hex)
		}
	case "tab":
		m.format = nextFormat(m.format)
		m.status = fmt.Sprintf("showing %s", m.format)
	case "c":
		fragment := urlstate.Encode(m.pal)
		if err := writeClipboard(fragment); err != nil {
			m.status = fmt.Sprintf("clipboard error: %v", err)
		} else {
			m.status = "share fragment copied"
		}
	case "e":
		m.entering = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateSeedEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.entering = false
		m.input.Blur()
		seed := color.FromHex(m.input.Value())
		rule := m.pal.Harmony
		if rule == "" {
			rule = harmony.RandomRule(m.rng)
		}
		m.pal = palette.FromSeed(seed, rule)
		m.status = fmt.Sprintf("seeded from %s", seed.Hex)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("hueforge"))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(m.pal.Colors))
	for i, c := range m.pal.Colors {
		cards = append(cards, m.renderSwatch(i, c))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	if m.showContrast {
		b.WriteString(m.styles.badge.Render(m.contrastLine()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.status.Render(urlstate.Encode(m.pal)))
	b.WriteString("\n")

	if m.entering {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}

	if m.showHints {
		b.WriteString(m.styles.hint.Render(
			"space regenerate · 1-5 lock · tab format · e seed · c copy · q quit"))
		b.WriteString("\n")
	}

	return m.styles.frame.Render(b.String())
}

func (m Model) renderSwatch(i int, c color.Color) string {
	label := color.FormatValue(c, m.format)
	lock := " "
	if c.Locked {
		lock = "locked"
	}
	body := fmt.Sprintf("%d\n\n%s\n%s", i+1, label, lock)
	return swatchStyle(c).Render(body)
}

// contrastLine summarizes adjacent-pair contrast with WCAG verdicts.
func (m Model) contrastLine() string {
	parts := make([]string, 0, len(m.pal.Colors)-1)
	for i := 0; i+1 < len(m.pal.Colors); i++ {
		ratio := contrast.Ratio(m.pal.Colors[i].RGB, m.pal.Colors[i+1].RGB)
		parts = append(parts, fmt.Sprintf("%d/%d %.1f %s",
			i+1, i+2, ratio, contrast.Level(ratio)))
	}
	return strings.Join(parts, "  ")
}

func nextFormat(f color.DisplayFormat) color.DisplayFormat {
	formats := color.DisplayFormats()
	for i, cur := range formats {
		if cur == f {
			return formats[(i+1)%len(formats)]
		}
	}
	return formats[0]
}

// Run starts the interactive program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
