package tui

import "github.com/charmbracelet/lipgloss"

// Theme colours the water ramp from trough to crest plus the chrome.
type Theme struct {
	Name   string
	Water  []lipgloss.Color
	Hull   lipgloss.Color
	Bow    lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
}

var (
	ThemeOcean = Theme{
		Name: "ocean",
		Water: []lipgloss.Color{
			"#001a33", "#00264d", "#003366", "#004480",
			"#005c99", "#0077be", "#3399cc", "#99ccee",
		},
		Hull:   "#ffd700",
		Bow:    "#ff4444",
		Text:   "#e0f0ff",
		Muted:  "#4488aa",
		Accent: "#00ff88",
		Border: "#444466",
	}

	ThemeRetroGreen = Theme{
		Name: "retro",
		Water: []lipgloss.Color{
			"#001100", "#002200", "#003300", "#005500",
			"#007700", "#00aa00", "#00cc00", "#88ff88",
		},
		Hull:   "#ffff00",
		Bow:    "#ff0000",
		Text:   "#00ff00",
		Muted:  "#005500",
		Accent: "#88ff88",
		Border: "#005500",
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Water: []lipgloss.Color{
			"#2d1b2e", "#4a2545", "#6b2f5a", "#8b3a62",
			"#b34a5e", "#ff6b6b", "#ff9f7a", "#feca57",
		},
		Hull:   "#fff5f5",
		Bow:    "#5fd068",
		Text:   "#fff5f5",
		Muted:  "#8b6b8c",
		Accent: "#ff9ff3",
		Border: "#8b6b8c",
	}

	Themes = []Theme{ThemeOcean, ThemeRetroGreen, ThemeSunset}
)

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// styles are the lipgloss styles derived from a theme.
type styles struct {
	water  []lipgloss.Style
	hull   lipgloss.Style
	bow    lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	active lipgloss.Style
	stats  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
	on     lipgloss.Style
	off    lipgloss.Style
}

func newStyles(t Theme) styles {
	s := styles{
		water:  make([]lipgloss.Style, len(t.Water)),
		hull:   lipgloss.NewStyle().Foreground(t.Hull).Bold(true),
		bow:    lipgloss.NewStyle().Foreground(t.Bow).Bold(true),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		active: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		stats:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Border).Padding(1, 2).Width(44),
		graph:  lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		on:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		off:    lipgloss.NewStyle().Foreground(t.Muted),
	}
	for i, c := range t.Water {
		s.water[i] = lipgloss.NewStyle().Foreground(c)
	}
	return s
}
