package ui

import "github.com/charmbracelet/lipgloss"

// Rosé Pine Moon palette for the text around swatches.
// https://rosepinetheme.com/palette/
var (
	colorMuted  = lipgloss.Color("#6e6a86")
	colorSubtle = lipgloss.Color("#908caa")
	colorText   = lipgloss.Color("#e0def4")
	colorLove   = lipgloss.Color("#eb6f92") // error
	colorGold   = lipgloss.Color("#f6c177") // fallback warning
)

var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorLove)
	WarningStyle = lipgloss.NewStyle().Foreground(colorGold)
)
