package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/flowdo/internal/item"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)

	priorityStyles = map[item.Priority]lipgloss.Style{
		item.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		item.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		item.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// priorityBadge renders a fixed-width priority label.
func priorityBadge(p item.Priority) string {
	label := p.String()
	for len(label) < len("medium") {
		label += " "
	}
	return priorityStyles[p].Render(label)
}
