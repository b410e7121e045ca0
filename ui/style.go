package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI colors keyed on where a mod has to be installed.
var sideColors = map[string]string{
	"server": "12", // blue
	"client": "10", // green
	"both":   "13", // magenta
}

// Colorize applies the given ANSI color to the text using lipgloss.
func Colorize(text, color string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return style.Render(text)
}

// SideColor returns the ANSI color used to render an install side.
func SideColor(side string) string {
	if color, ok := sideColors[side]; ok {
		return color
	}
	return "7" // white
}
