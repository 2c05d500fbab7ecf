//go:build !integration

package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.md")
	writeFile(t, path)

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.md")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.md")
	writeFile(t, path)

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(path), "files are not directories")
	assert.False(t, DirExists(filepath.Join(dir, "missing")))
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "beta-agent.md"))
	writeFile(t, filepath.Join(root, "alpha-agent.md"))
	writeFile(t, filepath.Join(root, "nested", "deep-agent.md"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "agent-template.md"))
	writeFile(t, filepath.Join(root, "docs", "guide.md"))

	files, err := FindFiles(root, ".md", []string{"template", "docs"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "alpha-agent.md"),
		filepath.Join(root, "beta-agent.md"),
		filepath.Join(root, "nested", "deep-agent.md"),
	}, files, "results must come back in lexical order with markers skipped")
}

func TestFindFilesEmptyTree(t *testing.T) {
	files, err := FindFiles(t.TempDir(), ".md", nil)

	require.NoError(t, err)
	assert.Empty(t, files)
}
