// Package memory implements the working-memory log: the single flat text
// file that accumulates protocol outputs across one chain run.
package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aleph-sh/aleph/internal/state"
)

// Header is the fixed first line of every working-memory file.
const Header = "# Internal Reservoir Instance"

// Log is a file-backed append-only text buffer. Sections are only ever added
// to the end; the file is rewritten wholesale on reset and on every append.
type Log struct {
	path string
}

// New returns a Log backed by the file at path. The file is not created
// until Reset or Append is called.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the backing file path.
func (l *Log) Path() string {
	return l.path
}

// Reset replaces the entire buffer with the fixed header and the raw user
// input. Every chain run starts here.
func (l *Log) Reset(userInput string) error {
	content := fmt.Sprintf("%s\n\n[User Input]:\n%s\n", Header, userInput)
	return state.WriteFileAtomic(l.path, []byte(content), 0644)
}

// Append adds a delimited section to the end of the buffer. Existing content
// is never reordered or removed.
func (l *Log) Append(title, body string) error {
	current, err := l.Read()
	if err != nil {
		return err
	}
	section := fmt.Sprintf("\n\n---\n### %s\n\n%s\n", title, body)
	return state.WriteFileAtomic(l.path, []byte(current+section), 0644)
}

// Read returns the full current buffer, or "" if the file does not exist.
func (l *Log) Read() (string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
