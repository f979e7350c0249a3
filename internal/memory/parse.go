package memory

import (
	"strings"
)

// Section is one titled block of the working-memory file.
type Section struct {
	Title string
	Body  string
}

// ParseSections extracts the appended sections from working-memory text.
// A section starts at a `---` rule followed by a `### Title` line and runs
// until the next rule or end of input. Sections are returned in file order.
func ParseSections(text string) []Section {
	lines := strings.Split(text, "\n")
	var sections []Section
	var current *Section
	var buf strings.Builder

	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(buf.String())
			sections = append(sections, *current)
			current = nil
			buf.Reset()
		}
	}

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			flush()
			// A rule opens a section only when a title line follows.
			for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "" {
				i++
			}
			if i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), "### ") {
				i++
				title := strings.TrimPrefix(strings.TrimSpace(lines[i]), "### ")
				current = &Section{Title: title}
			}
			continue
		}
		if current != nil {
			buf.WriteString(lines[i])
			buf.WriteString("\n")
		}
	}
	flush()
	return sections
}

// UserInput extracts the `[User Input]:` block from working-memory text.
// The block runs from the marker to the first `---` rule or end of input,
// trimmed of surrounding whitespace. Returns "" when the marker is absent
// or the block is empty.
func UserInput(text string) string {
	const marker = "[User Input]:"
	idx := strings.Index(text, marker)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(marker):]
	if end := strings.Index(rest, "\n---"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
