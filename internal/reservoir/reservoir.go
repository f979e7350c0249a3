// Package reservoir loads the named static reference documents that supply
// guidance content to protocol steps.
package reservoir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError reports a source name that does not resolve to a document.
// Callers are expected to treat this as fail-soft per access binding.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reservoir %q not found", e.Name)
}

// Dir resolves reservoir documents by filename within a single directory.
type Dir struct {
	root string
}

// NewDir returns a resolver rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Load reads the named document and returns its content trimmed of leading
// and trailing whitespace. Returns a *NotFoundError when the name does not
// resolve to an existing file.
func (d *Dir) Load(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(d.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Name: name}
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
