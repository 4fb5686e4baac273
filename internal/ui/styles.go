package ui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")).
			Padding(0, 1)

	styleHeaderLabel = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	styleHeaderValue = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))

	styleTableHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("250")).
				Underline(true)

	styleSelectedRow = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("237"))

	// Sensors still warming up are dimmed: their aggregates do not yet
	// cover a full window.
	styleWarming = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleReady = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleSparkline = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	styleFooter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	styleFooterKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	styleSearchPrompt = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	stylePaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)
)
