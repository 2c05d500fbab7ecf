//go:build !integration

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDocument(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		wantFrontmatter string
		wantBody        string
		wantOK          bool
	}{
		{
			name:            "simple document",
			content:         "---\nname: x\n---\nbody text",
			wantFrontmatter: "name: x",
			wantBody:        "body text",
			wantOK:          true,
		},
		{
			name:            "content after third delimiter joins the body",
			content:         "---\nname: x\n---\nintro\n---\noutro",
			wantFrontmatter: "name: x",
			wantBody:        "intro\n---\noutro",
			wantOK:          true,
		},
		{
			name:    "unterminated frontmatter",
			content: "---\nname: x\nbody without closing delimiter",
			wantOK:  false,
		},
		{
			name:            "empty frontmatter and body",
			content:         "---\n---\n",
			wantFrontmatter: "",
			wantBody:        "",
			wantOK:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frontmatter, body, ok := splitDocument(tt.content)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantFrontmatter, frontmatter)
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "simple key value pairs",
			input: "name: test-agent\ndescription: does things",
			want:  map[string]any{"name": "test-agent", "description": "does things"},
		},
		{
			name:  "double quoted value is unwrapped",
			input: `name: "test-agent"`,
			want:  map[string]any{"name": "test-agent"},
		},
		{
			name:  "single quoted value is unwrapped",
			input: "description: 'quoted text'",
			want:  map[string]any{"description": "quoted text"},
		},
		{
			name:  "mismatched quotes are kept",
			input: `name: "half-quoted`,
			want:  map[string]any{"name": `"half-quoted`},
		},
		{
			name:  "comment lines are ignored",
			input: "# a comment\nname: test-agent\n# another: comment",
			want:  map[string]any{"name": "test-agent"},
		},
		{
			name:  "blank lines and colonless lines are ignored",
			input: "\nname: test-agent\n\nnot a pair\n",
			want:  map[string]any{"name": "test-agent"},
		},
		{
			name:  "value may contain colons",
			input: "description: usage: run it often",
			want:  map[string]any{"description": "usage: run it often"},
		},
		{
			name:  "later duplicate key wins",
			input: "name: first\nname: second",
			want:  map[string]any{"name": "second"},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "   name :   spaced-out   ",
			want:  map[string]any{"name": "spaced-out"},
		},
		{
			name:  "empty input yields an empty mapping",
			input: "",
			want:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFrontmatter(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `"quoted"`, want: "quoted"},
		{input: "'quoted'", want: "quoted"},
		{input: `"mixed'`, want: `"mixed'`},
		{input: `""`, want: ""},
		{input: `"`, want: `"`},
		{input: "plain", want: "plain"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripQuotes(tt.input), "input %q", tt.input)
	}
}
