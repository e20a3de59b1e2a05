// Package download delivers exported chart images to their destination.
package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmptyName = errors.New("file name is empty")

// Dir saves downloads as files in a directory, creating it on demand.
type Dir struct {
	path string
}

// NewDir creates a [Dir] rooted at path. An empty path means the working
// directory.
func NewDir(path string) *Dir {
	if path == "" {
		path = "."
	}

	return &Dir{path: path}
}

func (d *Dir) Path() string {
	return d.path
}

// Download writes data to name inside the directory and returns the path of
// the written file. Path separators in name are replaced, so a download
// never leaves the directory.
func (d *Dir) Download(name string, data []byte) (string, error) {
	name = sanitize(name)
	if name == "" {
		return "", ErrEmptyName
	}

	err := os.MkdirAll(d.path, 0o700)
	if err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	out := filepath.Join(d.path, name)

	err = os.WriteFile(out, data, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to write to output file: %w", err)
	}

	return out, nil
}

func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}

		return r
	}, name)

	name = strings.TrimSpace(name)
	if name == "." || name == ".." {
		return ""
	}

	return name
}
