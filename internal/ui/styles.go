// Package ui renders pipeline progress for the terminal.
//
// Each progress level gets a lipgloss-styled prefix; messages pass through
// untouched so they stay grep-able in captured output.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asterizk/starhop/internal/pipeline"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// RenderEvent formats a progress event with a styled level prefix.
func RenderEvent(event pipeline.ProgressEvent) string {
	var prefix string
	switch event.Level {
	case pipeline.LevelError:
		prefix = errorStyle.Render("✗")
	case pipeline.LevelWarning:
		prefix = warningStyle.Render("!")
	case pipeline.LevelSuccess:
		prefix = successStyle.Render("✓")
	case pipeline.LevelVerbose:
		prefix = verboseStyle.Render("·")
	default:
		prefix = infoStyle.Render("•")
	}
	return prefix + " " + event.Message
}
