// Package fileutil provides the file discovery and existence helpers the
// runner uses around validation.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/githubnext/agentlint/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FindFiles walks root recursively and returns every file with the given
// extension whose path contains none of the skip markers. Results come
// back in lexical walk order, so discovery is deterministic. Unreadable
// subtrees are skipped rather than failing the walk; per-file read errors
// surface later when the file is actually read.
func FindFiles(root, ext string, skipMarkers []string) ([]string, error) {
	log.Printf("Discovering files: root=%s, ext=%s", root, ext)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}
		for _, marker := range skipMarkers {
			if strings.Contains(path, marker) {
				log.Printf("Skipping file: path=%s, marker=%s", path, marker)
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Discovery complete: root=%s, files=%d", root, len(files))
	return files, nil
}
