package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the toolbar.
type Theme struct {
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Separator    lipgloss.Style
	Status       lipgloss.Style
	Paused       lipgloss.Style
	Error        lipgloss.Style
}

// DefaultTheme returns the default toolbar theme.
func DefaultTheme() Theme {
	return Theme{
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("226")).Bold(true).Padding(0, 1),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Paused:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without colour.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.ButtonActive = lipgloss.NewStyle().Reverse(true).Bold(true).Padding(0, 1)
	theme.Paused = lipgloss.NewStyle().Bold(true)
	theme.Error = lipgloss.NewStyle().Underline(true)
	return theme
}

// ThemeByName returns a theme for the --theme flag.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	default:
		return DefaultTheme(), false
	}
}
