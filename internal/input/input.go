// Package input collects free text from the user by opening their editor,
// the way git collects commit messages. It supplies the raw user input that
// seeds a chain run and the optional per-protocol commentary.
package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/aleph-sh/aleph/internal/memory"
)

// ErrAborted is returned when the editor session produced no content.
// No user input means no chain can start.
var ErrAborted = errors.New("input collection aborted: editor closed without content")

const inputTemplate = "# input text:\n# Lines starting with '#' are ignored.\n\n"

// ObtainUserInput returns the raw user input for a chain run. A non-empty
// [User Input]: section already present in the working-memory file wins;
// otherwise the user's editor is opened. Captured input is stored back into
// the working-memory file before returning.
func ObtainUserInput(ctx context.Context, log *memory.Log) (string, error) {
	current, err := log.Read()
	if err != nil {
		return "", err
	}
	if existing := memory.UserInput(current); existing != "" {
		return existing, nil
	}

	fmt.Println("No user input found in the instance file.")
	fmt.Println("An editor will open — paste or type your raw input, then save and close.")

	text, err := edit(ctx, inputTemplate)
	if err != nil {
		return "", err
	}
	input := filterComments(text)
	if input == "" {
		return "", ErrAborted
	}
	if err := log.Reset(input); err != nil {
		return "", err
	}
	return input, nil
}

// ObtainCommentary opens the editor for free-text commentary on a protocol.
// An empty or abandoned session yields ""; commentary is optional.
func ObtainCommentary(ctx context.Context, protocolName string) (string, error) {
	fmt.Printf("Protocol %q requires commentary.\n", protocolName)
	fmt.Println("An editor will open — save and close when done.")

	template := fmt.Sprintf("# Commentary for protocol %s:\n# Lines starting with '#' are ignored.\n\n", protocolName)
	text, err := edit(ctx, template)
	if err != nil {
		return "", err
	}
	return filterComments(text), nil
}

// edit opens the user's editor on a temp file seeded with template and
// returns the saved content.
func edit(ctx context.Context, template string) (string, error) {
	f, err := os.CreateTemp("", "aleph-*.md")
	if err != nil {
		return "", err
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(template); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	parts := strings.Fields(editorCommand())
	parts = append(parts, path)
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %q: %w", parts[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func editorCommand() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// filterComments drops lines starting with '#' and trims the remainder.
func filterComments(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
