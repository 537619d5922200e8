// Package theme holds the terminal styles used by the CLI.
package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Plain = lipgloss.NewStyle()

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextDim)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	OK = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Fail = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Rule is a horizontal separator of width n.
func Rule(n int) string {
	return Dim.Render(strings.Repeat("─", n))
}

// Cell pads or cuts s to exactly width columns and applies style.
func Cell(style lipgloss.Style, s string, width int) string {
	if lipgloss.Width(s) > width {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
			r = r[:len(r)-1]
		}
		s = string(r) + "…"
	}
	return style.Width(width).MaxWidth(width).Render(s)
}

// Row joins cells with two spaces.
func Row(cells ...string) string {
	return strings.Join(cells, "  ")
}
