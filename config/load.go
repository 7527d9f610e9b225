package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the conventional configuration file name. Neither
// LoadDocumentFile nor Discover falls back to it; callers pass it
// explicitly (e.g. as Discover's fileName).
const DefaultFileName = "pathwinder.conf"

// LoadDocumentFile reads and parses a configuration document from path.
func LoadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	return doc, nil
}

// Discover walks upward from startDir looking for a file named
// fileName, returning the path of the first one found. It stops at the
// first filesystem root it reaches (the point where joining ".." no
// longer changes the directory), returning os.ErrNotExist if none of
// the ancestors contain the file.
func Discover(startDir, fileName string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, fileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s not found above %s", os.ErrNotExist, fileName, startDir)
		}

		dir = parent
	}
}
