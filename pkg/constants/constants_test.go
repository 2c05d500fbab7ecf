//go:build !integration

package constants

import (
	"testing"
)

func TestValidTools(t *testing.T) {
	expected := []string{
		"Read", "Write", "Edit", "MultiEdit", "Bash",
		"Grep", "Glob", "WebFetch", "WebSearch",
		"TodoWrite", "ExitPlanMode", "NotebookRead",
		"NotebookEdit", "LS", "Task",
	}

	if len(ValidTools) != 15 {
		t.Errorf("ValidTools length = %d, want 15", len(ValidTools))
	}
	for i, tool := range expected {
		if ValidTools[i] != tool {
			t.Errorf("ValidTools[%d] = %q, want %q", i, ValidTools[i], tool)
		}
	}
}

func TestRequiredSections(t *testing.T) {
	expected := []string{"Core Expertise", "Working Principles", "Task Approach"}

	if len(RequiredSections) != len(expected) {
		t.Fatalf("RequiredSections length = %d, want %d", len(RequiredSections), len(expected))
	}
	for i, section := range expected {
		if RequiredSections[i] != section {
			t.Errorf("RequiredSections[%d] = %q, want %q", i, RequiredSections[i], section)
		}
	}
}

func TestSkipPathMarkers(t *testing.T) {
	expected := []string{"template", "docs"}

	if len(SkipPathMarkers) != len(expected) {
		t.Fatalf("SkipPathMarkers length = %d, want %d", len(SkipPathMarkers), len(expected))
	}
	for i, marker := range expected {
		if SkipPathMarkers[i] != marker {
			t.Errorf("SkipPathMarkers[%d] = %q, want %q", i, SkipPathMarkers[i], marker)
		}
	}
}

func TestAgentFileExtension(t *testing.T) {
	if AgentFileExtension != ".md" {
		t.Errorf("AgentFileExtension = %q, want %q", AgentFileExtension, ".md")
	}
}

func TestGetAgentsDir(t *testing.T) {
	if GetAgentsDir() != "agents" {
		t.Errorf("GetAgentsDir() = %q, want %q", GetAgentsDir(), "agents")
	}
}
