// Package validator decides whether an agent definition file is valid.
//
// An agent definition is a markdown document with a `---`-delimited
// frontmatter header (name, description, optional tools) followed by a
// free-form system-prompt body. Validation is pure: each call builds a
// fresh ValidationResult from the raw content and the file path, with no
// state shared between calls. Errors force invalidity; warnings are
// advisory quality findings.
package validator

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/logger"
)

var log = logger.New("validator:validator")

var (
	// Agent names and file names share the same identifier alphabet.
	identifierPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

	// Markdown structure probes for the body checks.
	mainHeaderPattern = regexp.MustCompile(`(?m)^#\s+`)
	bulletListPattern = regexp.MustCompile(`(?m)^[-*]\s+`)
)

const (
	minNameLength        = 3
	maxNameLength        = 50
	minDescriptionLength = 20
	maxDescriptionLength = 500
	minBodyLength        = 100
	maxBodyLength        = 10000
)

// Validate checks one agent definition and returns the explanatory result.
// content is the raw file text; path is the logical file path used for the
// filename checks. The two structural failures (no leading delimiter,
// unterminated frontmatter) short-circuit every other check because no
// reliable frontmatter/body split exists; all remaining checks accumulate.
func Validate(content, path string) *ValidationResult {
	log.Printf("Validating agent definition: path=%s, size=%d bytes", path, len(content))
	r := newResult(path)

	if !strings.HasPrefix(content, frontmatterDelimiter) {
		r.addError("File must start with YAML frontmatter (---)")
		return r.finish()
	}

	frontmatter, body, ok := splitDocument(content)
	if !ok {
		r.addError("Invalid frontmatter format")
		return r.finish()
	}

	validateFrontmatter(r, frontmatter)
	validateBody(r, body)
	validateFilename(r, path)

	r.finish()
	log.Printf("Validation complete: path=%s, valid=%t, errors=%d, warnings=%d",
		path, r.Valid, len(r.Errors), len(r.Warnings))
	return r
}

// validateFrontmatter checks the required name and description fields and
// the optional tools field. A parse failure aborts only the frontmatter
// checks; body and filename checks still run.
func validateFrontmatter(r *ValidationResult, frontmatter string) {
	data, err := parseFrontmatter(frontmatter)
	if err != nil {
		r.addErrorf("Failed to parse frontmatter: %v", err)
		return
	}
	if data == nil {
		r.addError("Frontmatter must be a YAML dictionary")
		return
	}

	if nameValue, ok := data["name"]; !ok {
		r.addError("Missing required field: name")
	} else {
		// The three name checks are independent; a bad name can collect
		// more than one error.
		name, _ := nameValue.(string)
		if !identifierPattern.MatchString(name) {
			r.addError("Name must contain only lowercase letters, numbers, and hyphens")
		}
		if len(name) < minNameLength {
			r.addError("Name must be at least 3 characters long")
		}
		if len(name) > maxNameLength {
			r.addError("Name must be less than 50 characters")
		}
	}

	if descValue, ok := data["description"]; !ok {
		r.addError("Missing required field: description")
	} else {
		desc, _ := descValue.(string)
		if len(desc) < minDescriptionLength {
			r.addWarning("Description should be at least 20 characters for better auto-detection")
		}
		if len(desc) > maxDescriptionLength {
			r.addWarning("Description is very long (>500 chars), consider making it more concise")
		}
		// Both substring probes are kept even though the first subsumes
		// the second; collapsing them could change which descriptions
		// trigger the warning if the phrasing ever diverges.
		lower := strings.ToLower(desc)
		if !strings.Contains(lower, "proactively") && !strings.Contains(lower, "use proactively") {
			r.addWarning("Consider adding 'use proactively' to description for automatic invocation")
		}
	}

	if toolsValue, ok := data["tools"]; ok {
		validateTools(r, toolsValue)
	}
}

// validateTools checks the optional comma-separated tools field against
// the allow-list.
func validateTools(r *ValidationResult, toolsValue any) {
	toolsStr, ok := toolsValue.(string)
	if !ok {
		r.addError("Tools must be a comma-separated string")
		return
	}

	tools := strings.Split(toolsStr, ",")
	for i, tool := range tools {
		tools[i] = strings.TrimSpace(tool)
	}

	var invalid []string
	for _, tool := range tools {
		if !slices.Contains(constants.ValidTools, tool) {
			invalid = append(invalid, tool)
		}
	}
	if len(invalid) > 0 {
		r.addErrorf("Invalid tools: %s", strings.Join(invalid, ", "))
	}
	if len(tools) > constants.MaxRecommendedTools {
		r.addWarning("Consider if all tools are necessary (>10 tools requested)")
	}
}

// validateBody checks the system prompt length and its recommended
// markdown structure. Section and code-fence probes are plain substring
// containment, not heading-aware parsing; that keeps the warning set
// stable across markdown dialects.
func validateBody(r *ValidationResult, body string) {
	if len(body) < minBodyLength {
		r.addError("Agent system prompt is too short (<100 characters)")
	}
	if len(body) > maxBodyLength {
		r.addWarning("Agent system prompt is very long (>10000 characters)")
	}

	for _, section := range constants.RequiredSections {
		if !strings.Contains(body, section) {
			r.addWarningf("Missing recommended section: %s", section)
		}
	}

	if !strings.Contains(body, "```") {
		r.addWarning("No code examples found - consider adding examples for clarity")
	}
	if !mainHeaderPattern.MatchString(body) {
		r.addWarning("No main header (# Title) found in body")
	}
	if !bulletListPattern.MatchString(body) {
		r.addWarning("No bullet lists found - consider using lists for better organization")
	}
}

// validateFilename checks that the file stem uses the identifier alphabet
// and that the path carries the .md extension.
func validateFilename(r *ValidationResult, path string) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if !identifierPattern.MatchString(stem) {
		r.addError("Filename should contain only lowercase letters, numbers, and hyphens")
	}
	if !strings.HasSuffix(path, constants.AgentFileExtension) {
		r.addError("Agent files must have .md extension")
	}
}
