// Package styles provides lipgloss styles and renderers for the tessera CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Focus    lipgloss.Color
	Border   lipgloss.Color
	Sleeping lipgloss.Color
	Error    lipgloss.Color
	Audio    lipgloss.Color

	ShowTileIDs bool

	// Pre-built styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style
	AudioStyle lipgloss.Style

	TileLive     lipgloss.Style
	TileSleeping lipgloss.Style
	TileFocused  lipgloss.Style
	TileFailed   lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
	StatusBar  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
}

// NewTheme creates a Theme from the appearance section of cfg. A nil config
// uses the defaults.
func NewTheme(cfg *config.Config) *Theme {
	appearance := config.DefaultConfig().Appearance
	if cfg != nil {
		appearance = withFallbacks(cfg.Appearance, appearance)
	}

	t := &Theme{
		Text:        lipgloss.Color("#c0caf5"),
		Muted:       lipgloss.Color("#737aa2"),
		Focus:       lipgloss.Color(appearance.FocusColor),
		Border:      lipgloss.Color(appearance.BorderColor),
		Sleeping:    lipgloss.Color(appearance.SleepingColor),
		Error:       lipgloss.Color(appearance.ErrorColor),
		Audio:       lipgloss.Color(appearance.AudioColor),
		ShowTileIDs: appearance.ShowTileIDs,
	}
	t.buildStyles()
	return t
}

func withFallbacks(a, defaults config.AppearanceConfig) config.AppearanceConfig {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	a.FocusColor = pick(a.FocusColor, defaults.FocusColor)
	a.BorderColor = pick(a.BorderColor, defaults.BorderColor)
	a.SleepingColor = pick(a.SleepingColor, defaults.SleepingColor)
	a.ErrorColor = pick(a.ErrorColor, defaults.ErrorColor)
	a.AudioColor = pick(a.AudioColor, defaults.AudioColor)
	return a
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Focus).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.AudioStyle = lipgloss.NewStyle().Foreground(t.Audio)

	tile := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())
	t.TileLive = tile.BorderForeground(t.Border).Foreground(t.Text)
	t.TileSleeping = tile.BorderStyle(lipgloss.NormalBorder()).BorderForeground(t.Sleeping).Foreground(t.Muted)
	t.TileFocused = tile.BorderStyle(lipgloss.ThickBorder()).BorderForeground(t.Focus).Foreground(t.Text)
	t.TileFailed = tile.BorderForeground(t.Error).Foreground(t.Error)

	t.Badge = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(t.Focus).Padding(0, 1)
	t.BadgeMuted = lipgloss.NewStyle().Foreground(t.Text).Background(t.Sleeping).Padding(0, 1)
	t.StatusBar = lipgloss.NewStyle().Foreground(t.Muted)
	t.HelpKey = lipgloss.NewStyle().Foreground(t.Focus)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)
}
