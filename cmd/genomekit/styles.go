package main

import "github.com/charmbracelet/lipgloss"

// Semantic styles for terminal output.
var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")) // Red
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))            // Yellow
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))            // Green
	headingStyle = lipgloss.NewStyle().Bold(true)
)
