// Package frontend serves the web UI for the product catalogue.
package frontend

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// safeFileSystem wraps http.Dir to prevent directory traversal attacks.
type safeFileSystem struct {
	root string
}

// Open implements http.FileSystem with path traversal protection.
func (fs safeFileSystem) Open(name string) (http.File, error) {
	// Clean the path to remove any . or .. components
	cleanPath := filepath.Clean("/" + filepath.FromSlash(name))

	absRoot, err := filepath.Abs(fs.root)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(filepath.Join(absRoot, cleanPath))
	if err != nil {
		return nil, err
	}

	// The resolved path must stay within the root directory
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return nil, os.ErrNotExist
	}

	return os.Open(absPath)
}

// NewSafeFileSystem creates a new safe file system that prevents path traversal.
func NewSafeFileSystem(root string) http.FileSystem {
	return safeFileSystem{root: root}
}
