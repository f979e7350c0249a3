package invoke

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeClaude installs a shell script named claude at the front of PATH.
func fakeClaude(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "claude")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestInvoke_ReturnsResultText(t *testing.T) {
	fakeClaude(t, `echo '{"type":"result","result":"  model says hi  "}'`)

	inv := &ClaudeInvoker{Model: "sonnet"}
	got, err := inv.Invoke(context.Background(), "prompt text")
	if err != nil {
		t.Fatal(err)
	}
	if got != "model says hi" {
		t.Fatalf("got %q", got)
	}
}

func TestInvoke_ConcatenatesDeltas(t *testing.T) {
	fakeClaude(t, strings.Join([]string{
		`echo '{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"a"}}}'`,
		`echo '{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"b"}}}'`,
	}, "\n"))

	var display strings.Builder
	inv := &ClaudeInvoker{Model: "sonnet", Display: &display}
	got, err := inv.Invoke(context.Background(), "p")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ab" {
		t.Fatalf("got %q", got)
	}
	if display.String() != "ab" {
		t.Fatalf("display = %q", display.String())
	}
}

func TestInvoke_NonZeroExit(t *testing.T) {
	fakeClaude(t, "echo 'boom' >&2\nexit 3")

	inv := &ClaudeInvoker{Model: "sonnet"}
	_, err := inv.Invoke(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "exited 3") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("stderr not surfaced: %v", err)
	}
}

func TestInvoke_PromptPassedAsArgument(t *testing.T) {
	// The fake echoes its second argument (the prompt) back as the result.
	fakeClaude(t, `printf '{"type":"result","result":"%s"}\n' "$2"`)

	inv := &ClaudeInvoker{Model: "sonnet"}
	got, err := inv.Invoke(context.Background(), "the assembled prompt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the assembled prompt" {
		t.Fatalf("got %q", got)
	}
}

func TestExitCode(t *testing.T) {
	if code, err := exitCode(nil); code != 0 || err != nil {
		t.Fatalf("nil: %d %v", code, err)
	}

	cmd := exec.Command("sh", "-c", "exit 7")
	runErr := cmd.Run()
	if code, err := exitCode(runErr); code != 7 || err != nil {
		t.Fatalf("sh exit 7: %d %v", code, err)
	}

	other := os.ErrNotExist
	if _, err := exitCode(other); err == nil {
		t.Fatal("non-exit error should pass through")
	}
}

func TestPreflight(t *testing.T) {
	fakeClaude(t, "exit 0")
	if err := Preflight(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", t.TempDir())
	if err := Preflight(); err == nil {
		t.Fatal("expected error with empty PATH")
	}
}
