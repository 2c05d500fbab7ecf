// Package styles defines the shared color palette for console output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// ColorSuccess marks passing validations.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	// ColorError marks findings that block validity.
	ColorError = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	// ColorWarning marks advisory findings.
	ColorWarning = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	// ColorInfo marks neutral progress output.
	ColorInfo = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	// ColorLocation marks file paths.
	ColorLocation = lipgloss.AdaptiveColor{Light: "240", Dark: "246"}
)
