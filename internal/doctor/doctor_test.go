package doctor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleph-sh/aleph/internal/config"
	"github.com/aleph-sh/aleph/internal/state"
)

type recordingInvoker struct {
	prompt string
}

func (r *recordingInvoker) Invoke(_ context.Context, prompt string) (string, error) {
	r.prompt = prompt
	return "diagnosis", nil
}

func TestGatherLog_Short(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(state.LogPath(dir, 0), []byte("line 1\nline 2\nline 3"), 0644); err != nil {
		t.Fatal(err)
	}

	result := gatherLog(dir, 0)
	if result != "line 1\nline 2\nline 3" {
		t.Errorf("expected full content, got %q", result)
	}
}

func TestGatherLog_Long(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0755); err != nil {
		t.Fatal(err)
	}
	var lines []string
	for i := 0; i < 300; i++ {
		lines = append(lines, "log line")
	}
	if err := os.WriteFile(state.LogPath(dir, 0), []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatal(err)
	}

	result := gatherLog(dir, 0)
	if !strings.HasPrefix(result, "... (truncated to last 200 lines)") {
		t.Errorf("expected truncation prefix, got %q", result[:60])
	}
}

func TestGatherLog_Missing(t *testing.T) {
	if got := gatherLog(t.TempDir(), 0); got != "(no log file found)" {
		t.Errorf("expected missing placeholder, got %q", got)
	}
}

func TestGatherProtocolConfig(t *testing.T) {
	p := &config.Protocol{
		Name:               "Reflect",
		Pattern:            "Reflect.md",
		RequiresCommentary: true,
		Accesses: config.Accesses{
			{Label: "Theory", Source: "Abstraction_Theory.md"},
		},
	}
	got := gatherProtocolConfig(p)
	for _, want := range []string{
		"Name: Reflect",
		"Pattern: Reflect.md",
		"Requires commentary: yes",
		"Access: Theory <- Abstraction_Theory.md",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRun_NoFailedRun(t *testing.T) {
	inv := &recordingInvoker{}
	report := &state.Report{Status: state.StatusCompleted}
	if err := Run(context.Background(), t.TempDir(), &config.Config{}, report, inv); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if inv.prompt != "" {
		t.Error("doctor invoked the model for a completed run")
	}
}

func TestRun_DiagnosesFirstFailedStep(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(state.LogPath(dir, 1), []byte("partial output"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Name: "test",
		Protocols: []config.Protocol{
			{Name: "Extract", Pattern: "Extract.md", Included: true},
			{Name: "Atomize", Pattern: "Atomize.md", Included: true},
		},
	}
	report := &state.Report{
		Status: state.StatusFailed,
		Steps: []state.StepResult{
			{Name: "Extract", Output: "ok"},
			{Name: "Atomize", Err: "model invocation: claude exited 1"},
		},
	}

	inv := &recordingInvoker{}
	if err := Run(context.Background(), dir, cfg, report, inv); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{
		"Name: Atomize",
		"model invocation: claude exited 1",
		"partial output",
	} {
		if !strings.Contains(inv.prompt, want) {
			t.Errorf("diagnosis prompt missing %q", want)
		}
	}
}
