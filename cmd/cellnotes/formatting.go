package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/cellnotes/pkg/style"
)

// styled renders the text with the given style only when stdout is a terminal
func styled(s lipgloss.Style, text string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return text
	}
	return s.Render(text)
}

func styleError(text string) string {
	return styled(style.ErrorStyle, text)
}
