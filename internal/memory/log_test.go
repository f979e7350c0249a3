package memory

import (
	"path/filepath"
	"strings"
	"testing"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "instance.md"))
}

func TestRead_NeverInitialized(t *testing.T) {
	l := newTestLog(t)
	got, err := l.Read()
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Read = %q, want empty", got)
	}
}

func TestReset_WritesHeaderAndInput(t *testing.T) {
	l := newTestLog(t)
	if err := l.Reset("raw input text"); err != nil {
		t.Fatal(err)
	}
	got, err := l.Read()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, Header+"\n") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "[User Input]:\nraw input text\n") {
		t.Fatalf("missing input block: %q", got)
	}
}

func TestReset_DiscardsPriorSections(t *testing.T) {
	l := newTestLog(t)
	if err := l.Reset("first"); err != nil {
		t.Fatal(err)
	}
	if err := l.Append("Extract Output", "old content"); err != nil {
		t.Fatal(err)
	}
	if err := l.Reset("second"); err != nil {
		t.Fatal(err)
	}
	got, _ := l.Read()
	if strings.Contains(got, "old content") {
		t.Fatalf("reset kept old section: %q", got)
	}
	if !strings.Contains(got, "second") {
		t.Fatalf("reset lost new input: %q", got)
	}
}

func TestAppend_OrderPreserved(t *testing.T) {
	l := newTestLog(t)
	if err := l.Reset("in"); err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"Extract Output", "Atomize Output", "Reflect Output"} {
		if err := l.Append(title, "body of "+title); err != nil {
			t.Fatal(err)
		}
	}
	got, _ := l.Read()

	sections := ParseSections(got)
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3: %v", len(sections), sections)
	}
	want := []string{"Extract Output", "Atomize Output", "Reflect Output"}
	for i, s := range sections {
		if s.Title != want[i] {
			t.Fatalf("section %d = %q, want %q", i, s.Title, want[i])
		}
		if !strings.Contains(s.Body, "body of "+want[i]) {
			t.Fatalf("section %d body = %q", i, s.Body)
		}
	}
}

func TestAppend_DelimiterFormat(t *testing.T) {
	l := newTestLog(t)
	if err := l.Reset("in"); err != nil {
		t.Fatal(err)
	}
	if err := l.Append("Extract Output", "content"); err != nil {
		t.Fatal(err)
	}
	got, _ := l.Read()
	if !strings.Contains(got, "\n\n---\n### Extract Output\n\ncontent\n") {
		t.Fatalf("unexpected section format: %q", got)
	}
}

func TestAppend_WithoutReset(t *testing.T) {
	// Append on an uninitialized log still produces a readable section.
	l := newTestLog(t)
	if err := l.Append("Orphan", "text"); err != nil {
		t.Fatal(err)
	}
	got, _ := l.Read()
	if !strings.Contains(got, "### Orphan") {
		t.Fatalf("got %q", got)
	}
}
