package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
)

// Theme contains the visual styles for the board screen.
type Theme struct {
	Name string

	// Palette maps screen cell colors to terminal styles
	Palette map[core.Color]lipgloss.Style

	// Status bar styles
	StatusBar   lipgloss.Style
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	Help        lipgloss.Style
}

// DarkTheme returns the default theme for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Name: config.ThemeDark,
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorLink:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
			core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		},
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// LightTheme returns a theme for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Name: config.ThemeLight,
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			core.ColorLink:    lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
		},
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		StatusLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// ThemeByName returns the named theme, falling back to dark.
func ThemeByName(name string) Theme {
	if name == config.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == config.ThemeLight {
		return DarkTheme()
	}
	return LightTheme()
}
