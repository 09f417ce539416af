package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color set the terminal views draw with.
type Theme struct {
	Name    string
	Header  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Error   lipgloss.Color
	Graph   lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:    "default",
		Header:  lipgloss.Color("86"),
		Label:   lipgloss.Color("245"),
		Value:   lipgloss.Color("252"),
		Running: lipgloss.Color("48"),
		Paused:  lipgloss.Color("214"),
		Error:   lipgloss.Color("203"),
		Graph:   lipgloss.Color("49"),
		Muted:   lipgloss.Color("240"),
	}

	// ThemeMono suits terminals without a usable color palette.
	ThemeMono = Theme{
		Name:    "mono",
		Header:  lipgloss.Color("255"),
		Label:   lipgloss.Color("245"),
		Value:   lipgloss.Color("252"),
		Running: lipgloss.Color("255"),
		Paused:  lipgloss.Color("250"),
		Error:   lipgloss.Color("255"),
		Graph:   lipgloss.Color("250"),
		Muted:   lipgloss.Color("240"),
	}

	themes = []Theme{ThemeDefault, ThemeMono}
)

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// SetTheme rebuilds the package styles from the named theme.
func SetTheme(name string) {
	applyTheme(GetTheme(name))
}

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
