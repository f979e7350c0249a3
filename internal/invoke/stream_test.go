package invoke

import (
	"strings"
	"testing"
)

func TestProcessStream_DeltasConcatenated(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"system","subtype":"init"}`,
		`{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"Hello "}}}`,
		`{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"world"}}}`,
	}, "\n")

	var display strings.Builder
	got, err := processStream(strings.NewReader(input), &display)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello world" {
		t.Fatalf("text = %q", got)
	}
	if display.String() != "Hello world" {
		t.Fatalf("display = %q", display.String())
	}
}

func TestProcessStream_ResultPreferred(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"partial"}}}`,
		`{"type":"result","result":"final text"}`,
	}, "\n")

	got, err := processStream(strings.NewReader(input), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "final text" {
		t.Fatalf("text = %q", got)
	}
}

func TestProcessStream_NonStringResultFallsBack(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"deltas win"}}}`,
		`{"type":"result","result":{"cost_usd":0.01}}`,
	}, "\n")

	got, err := processStream(strings.NewReader(input), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "deltas win" {
		t.Fatalf("text = %q", got)
	}
}

func TestProcessStream_SkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`not json at all`,
		`{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"text_delta","text":"ok"}}}`,
		``,
	}, "\n")

	got, err := processStream(strings.NewReader(input), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ok" {
		t.Fatalf("text = %q", got)
	}
}

func TestProcessStream_IgnoresNonTextDeltas(t *testing.T) {
	input := `{"type":"stream_event","event":{"type":"content_block_delta","delta":{"type":"input_json_delta","partial_json":"{}"}}}`
	got, err := processStream(strings.NewReader(input), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("text = %q", got)
	}
}
