package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for commands the user is told to run.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for name-rule warnings.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for name-rule errors.
	colorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCommand styles shell commands in the next-steps summary.
	StyleCommand = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Severity values for FormatRuleLine.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// severityStyle returns the style for a rule severity.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case SeverityError:
		return lipgloss.NewStyle().Foreground(colorRed)
	case SeverityWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatRuleLine renders a single violated naming rule as a bullet.
func FormatRuleLine(severity, msg string) string {
	return severityStyle(severity).Render("  *  " + msg)
}

// FormatRuleList renders errors followed by warnings, one bullet per line.
func FormatRuleList(errs, warnings []string) string {
	lines := make([]string, 0, len(errs)+len(warnings))
	for _, e := range errs {
		lines = append(lines, FormatRuleLine(SeverityError, e))
	}
	for _, w := range warnings {
		lines = append(lines, FormatRuleLine(SeverityWarning, w))
	}
	return strings.Join(lines, "\n")
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCommand renders a command with an indented description below it.
func FormatCommand(cmd, description string) string {
	return "  " + StyleCommand.Render(cmd) + "\n    " + StyleDim.Render(description)
}
