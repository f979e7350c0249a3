package invoke

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// streamEvent is the top-level JSON structure from stream-json output.
type streamEvent struct {
	Type   string          `json:"type"`
	Event  json.RawMessage `json:"event"`
	Result json.RawMessage `json:"result"`
}

// nestedEvent is the inner event from stream_event messages.
type nestedEvent struct {
	Type  string      `json:"type"`
	Delta *deltaBlock `json:"delta"`
}

// deltaBlock holds the delta in content_block_delta events.
type deltaBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// processStream reads stream-json lines from stdout, relays text deltas to
// display, and returns the response text. The final result event's text is
// preferred; accumulated deltas are the fallback, concatenated to the same
// effect.
func processStream(stdout io.Reader, display io.Writer) (string, error) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 256*1024), 1024*1024)

	var textBuf strings.Builder
	var finalText string

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event streamEvent
		if err := json.Unmarshal(line, &event); err != nil {
			// Skip malformed lines
			continue
		}

		switch event.Type {
		case "stream_event":
			handleStreamEvent(&event, &textBuf, display)

		case "result":
			// The result field is a plain string for text-only runs.
			var s string
			if event.Result != nil && json.Unmarshal(event.Result, &s) == nil {
				finalText = s
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stream: %w", err)
	}

	if finalText != "" {
		return finalText, nil
	}
	return textBuf.String(), nil
}

func handleStreamEvent(event *streamEvent, textBuf *strings.Builder, display io.Writer) {
	if event.Event == nil {
		return
	}

	var nested nestedEvent
	if err := json.Unmarshal(event.Event, &nested); err != nil {
		return
	}

	if nested.Type != "content_block_delta" || nested.Delta == nil {
		return
	}
	if nested.Delta.Type != "text_delta" {
		return
	}

	textBuf.WriteString(nested.Delta.Text)
	if display != nil {
		fmt.Fprint(display, nested.Delta.Text)
	}
}
