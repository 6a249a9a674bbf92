package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/swatch"
)

// formatHex returns hex, or with --preview a block filled with the color
// and labeled in its standout color.
func formatHex(c swatch.Color) string {
	hex := c.Hex()
	if !flagPreview {
		return hex
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(swatch.StandoutColor(c).Hex())).
		Padding(0, 1).
		Render(hex)
}
