// Package style holds the lipgloss styles used by the command surface.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	CellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	AuthorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)
)
