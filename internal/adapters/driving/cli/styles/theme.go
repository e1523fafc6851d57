// Package styles holds the lipgloss styles of the build summary.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	accent = lipgloss.Color("#7C3AED")
	grey   = lipgloss.Color("#6C7086")
	green  = lipgloss.Color("#A6E3A1")
	yellow = lipgloss.Color("#F9E2AF")
	red    = lipgloss.Color("#F38BA8")
	edge   = lipgloss.Color("#45475A")
)

// Summary styles one build report. Success, Warning and Error colour the
// outcome line of a clean build, an error-slide fallback and a failure.
type Summary struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}

// NewSummary returns the summary styles with labels padded to labelWidth.
func NewSummary(labelWidth int) *Summary {
	bold := lipgloss.NewStyle().Bold(true)
	return &Summary{
		Title:   bold.Foreground(accent),
		Label:   lipgloss.NewStyle().Foreground(grey).Width(labelWidth),
		Muted:   lipgloss.NewStyle().Foreground(grey),
		Success: bold.Foreground(green),
		Warning: bold.Foreground(yellow),
		Error:   bold.Foreground(red),
		Box:     lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(edge).Padding(0, 1),
	}
}
