package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorOrange = lipgloss.Color("#f97316")
	colorPurple = lipgloss.Color("#a855f7")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorDim    = lipgloss.Color("#6b7280")

	// Styles
	infoStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	progressStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPurple)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	groupStyle = lipgloss.NewStyle().
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
