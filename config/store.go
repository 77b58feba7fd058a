// Package config provides the filesystem-backed ConfigFileStore and the
// singleflight-deduplicated, cached ConfigResolver.
package config

import (
	"os"
	"path/filepath"

	"readflow"
)

var _ readflow.ConfigFileStore = (*FileStore)(nil)

// FileStore scans a set of directories at construction and maps
// filenames to absolute paths. When the same filename appears in
// several directories, the first-listed directory wins.
// The index is built once and never mutated afterward.
type FileStore struct {
	index map[string]string
}

// NewFileStore scans dirs in order and builds the filename index.
// Unreadable directories are skipped rather than treated as fatal, so a
// misconfigured extra directory does not prevent startup.
func NewFileStore(dirs ...string) (*FileStore, error) {
	index := make(map[string]string)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if _, exists := index[name]; exists {
				continue
			}
			index[name] = filepath.Join(dir, name)
		}
	}
	return &FileStore{index: index}, nil
}

// Lookup returns the path for filename, or ok=false if no scanned
// directory contains it.
func (s *FileStore) Lookup(filename string) (string, bool) {
	path, ok := s.index[filename]
	return path, ok
}
