// Package console formats validation output for the terminal.
//
// Validation findings stay plain strings inside the validator; styling is
// applied only here, at the presentation boundary, so the core remains
// testable against exact message text.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/githubnext/agentlint/pkg/styles"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(styles.ColorSuccess)
	errorStyle    = lipgloss.NewStyle().Foreground(styles.ColorError)
	warningStyle  = lipgloss.NewStyle().Foreground(styles.ColorWarning)
	infoStyle     = lipgloss.NewStyle().Foreground(styles.ColorInfo)
	locationStyle = lipgloss.NewStyle().Foreground(styles.ColorLocation)
)

// FormatSuccessMessage styles a passing-result line.
func FormatSuccessMessage(message string) string {
	return successStyle.Render(message)
}

// FormatErrorMessage styles a blocking finding.
func FormatErrorMessage(message string) string {
	return errorStyle.Render(message)
}

// FormatWarningMessage styles an advisory finding.
func FormatWarningMessage(message string) string {
	return warningStyle.Render(message)
}

// FormatInfoMessage styles neutral progress output.
func FormatInfoMessage(message string) string {
	return infoStyle.Render(message)
}

// FormatLocationMessage styles a file path.
func FormatLocationMessage(path string) string {
	return locationStyle.Render(path)
}

// FormatErrorFinding renders one validator error with the standard indent.
func FormatErrorFinding(message string) string {
	return FormatErrorMessage(fmt.Sprintf("  ERROR: %s", message))
}

// FormatWarningFinding renders one validator warning with the standard indent.
func FormatWarningFinding(message string) string {
	return FormatWarningMessage(fmt.Sprintf("  WARNING: %s", message))
}

// Rule renders the horizontal separator used around batch summaries.
func Rule() string {
	return strings.Repeat("=", 50)
}
