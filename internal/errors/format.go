package errors

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D01012"))
	codeStyle       = lipgloss.NewStyle().Bold(true)
	detailStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00852B"))
)

// Format returns the error formatted for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("ERROR"))
	b.WriteString(" ")
	if e.Code != "" {
		b.WriteString(codeStyle.Render(e.Code + ":"))
		b.WriteString(" ")
	}
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("  ")
		b.WriteString(detailStyle.Render(e.Detail))
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(detailStyle.Render("caused by: " + e.Wrapped.Error()))
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n  ")
		b.WriteString(suggestionStyle.Render("hint: " + e.Suggestion))
		b.WriteString("\n")
	}

	return b.String()
}
