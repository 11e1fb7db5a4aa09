package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/airiskcouncil/arcctl/internal/errors"
)

var (
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	suggestionStyle = lipgloss.NewStyle().Faint(true)
)

// RenderError formats an error for the terminal. Coded errors show their
// code, message, and suggestions; anything else prints as-is.
func RenderError(err error, noColor bool) string {
	if err == nil {
		return ""
	}

	ce, ok := errors.FromError(err)
	if !ok {
		return "Error: " + err.Error()
	}

	var b strings.Builder

	head := fmt.Sprintf("Error [%s]: %s", ce.Code, ce.Message)
	if !noColor {
		head = errorStyle.Render(head)
	}
	b.WriteString(head)

	if ce.Cause != nil {
		b.WriteString("\n  caused by: " + ce.Cause.Error())
	}

	for _, s := range ce.Suggestions {
		line := "  hint: " + s
		if !noColor {
			line = suggestionStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}

	if ce.DocsURL != "" {
		b.WriteString("\n  docs: " + ce.DocsURL)
	}

	return b.String()
}

// PrintError writes a rendered error followed by a newline.
func PrintError(w io.Writer, err error, noColor bool) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, RenderError(err, noColor))
}
