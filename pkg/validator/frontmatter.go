package validator

import (
	"strings"
)

// frontmatterDelimiter separates the metadata header from the agent body.
const frontmatterDelimiter = "---"

// splitDocument splits raw content into trimmed frontmatter and body
// segments. Only the first two delimiters are structurally significant;
// anything after the second stays in the body. The boolean reports whether
// the split produced a usable frontmatter/body pair.
func splitDocument(content string) (frontmatter, body string, ok bool) {
	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return "", "", false
	}
	return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), true
}

// parseFrontmatter parses the metadata header as flat key/value pairs.
// It handles `key: value` lines, strips one pair of surrounding quotes
// from values, and ignores blank lines, comment lines, and lines without
// a colon. Later duplicate keys win. This deliberately stays a line-based
// parser rather than a schema-aware YAML load: agent frontmatter is flat,
// and the checks downstream depend on this parser's exact behavior.
func parseFrontmatter(frontmatter string) (map[string]any, error) {
	data := make(map[string]any)
	for _, line := range strings.Split(strings.TrimSpace(frontmatter), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		data[strings.TrimSpace(key)] = stripQuotes(strings.TrimSpace(value))
	}
	return data, nil
}

// stripQuotes removes one matching pair of surrounding double or single
// quotes, if present.
func stripQuotes(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
