// Package invoke runs assembled prompts through the claude CLI. The chain
// treats this as an opaque prompt → text collaborator.
package invoke

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// Invoker is the model-invocation collaborator. Tests can substitute a mock.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// ClaudeInvoker invokes claude -p with stream-json output, relaying text
// deltas to Display (when set) and concatenating them into the result.
type ClaudeInvoker struct {
	Model   string
	Timeout time.Duration // zero means no timeout
	Display io.Writer     // optional live text relay
}

func (c *ClaudeInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "claude", "-p", prompt,
		"--model", c.Model,
		"--output-format", "stream-json", "--verbose", "--include-partial-messages")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = 5 * time.Second

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", err
	}

	text, streamErr := processStream(stdout, c.Display)

	code, err := exitCode(cmd.Wait())
	if err != nil {
		return "", err
	}
	if code != 0 {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no error output"
		}
		return "", fmt.Errorf("claude exited %d: %s", code, msg)
	}
	if streamErr != nil {
		return "", streamErr
	}
	return strings.TrimSpace(text), nil
}
