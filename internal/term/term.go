// Package term provides the styled terminal output used by the CLI
// commands: banner headers, status lines, and section formatting.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 60

// Semantic colors shared by every command.
var (
	SuccessColor = lipgloss.Color("#8BC34A")
	WarningColor = lipgloss.Color("#FFC107")
	ErrorColor   = lipgloss.Color("#e53935")
	StepColor    = lipgloss.Color("#2196F3")
	HeaderColor  = lipgloss.Color("#4db6ac")
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(HeaderColor).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	warningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	stepStyle    = lipgloss.NewStyle().Foreground(StepColor).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Header prints a banner with the text centered between rules.
func Header(w io.Writer, text string) {
	rule := strings.Repeat("=", bannerWidth)
	pad := (bannerWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render(rule))
	fmt.Fprintln(w, headerStyle.Render(strings.Repeat(" ", pad)+text))
	fmt.Fprintln(w, headerStyle.Render(rule))
	fmt.Fprintln(w)
}

// Section prints a bold section label.
func Section(w io.Writer, text string) {
	fmt.Fprintln(w, boldStyle.Render(text))
}

// Success prints a green OK line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("[ok] "+fmt.Sprintf(format, args...)))
}

// Warn prints a yellow warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render("[warn] "+fmt.Sprintf(format, args...)))
}

// Error prints a red failure line.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("[fail] "+fmt.Sprintf(format, args...)))
}

// Step prints a blue in-progress line.
func Step(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, stepStyle.Render("[run] "+fmt.Sprintf(format, args...)))
}

// Dim prints a faint detail line.
func Dim(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// StatusLine renders a pass/warn/fail prefix for list items.
func StatusLine(passed, skipped bool) string {
	switch {
	case skipped:
		return warningStyle.Render("[skip]")
	case passed:
		return successStyle.Render("[ok]")
	default:
		return errorStyle.Render("[fail]")
	}
}
