// Package constants holds the fixed tables the validator and runner share.
package constants

import "path/filepath"

// AgentFileExtension is the only file extension agent definitions may use.
const AgentFileExtension = ".md"

// DefaultConfigFile is the runner config file looked up in the working directory.
const DefaultConfigFile = ".agentlint.yml"

// ValidTools is the allow-list of tool names an agent may request in its
// frontmatter `tools` field. Order matters only for display; membership is
// what the validator checks.
var ValidTools = []string{
	"Read", "Write", "Edit", "MultiEdit", "Bash",
	"Grep", "Glob", "WebFetch", "WebSearch",
	"TodoWrite", "ExitPlanMode", "NotebookRead",
	"NotebookEdit", "LS", "Task",
}

// RequiredSections are the section labels every agent body is expected to
// contain. Absence is a warning, not an error.
var RequiredSections = []string{"Core Expertise", "Working Principles", "Task Approach"}

// SkipPathMarkers are substrings that exclude a file from directory scans.
// Template and documentation files live alongside real agents and are not
// themselves valid agent definitions.
var SkipPathMarkers = []string{"template", "docs"}

// MaxRecommendedTools is the tool count above which the validator warns.
const MaxRecommendedTools = 10

// GetAgentsDir returns the default directory scanned for agent definitions
// when no explicit path is given.
func GetAgentsDir() string {
	return filepath.Clean("agents")
}
