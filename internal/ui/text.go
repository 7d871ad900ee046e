package ui

import (
	"fmt"
	"strings"
	"unicode"

	"lifecanvas/internal/core"
)

// HelpLines is the content of the help overlay.
var HelpLines = []string{
	"Game of Life",
	"",
	"Any live cell with fewer than two live neighbours dies.",
	"Any live cell with two or three live neighbours lives on.",
	"Any live cell with more than three live neighbours dies.",
	"Any dead cell with exactly three live neighbours becomes alive.",
	"",
	"Space      start / stop",
	"N          single generation",
	"G          reset and centre glider",
	"C          clear",
	"End        random fill of the visible area",
	"S / L      save / load pattern file",
	"P          save board to the pattern library",
	"B          show / hide pattern library",
	"1-9        load library pattern",
	"Shift+1-9  delete library pattern",
	"Arrows     move cursor",
	"Enter      toggle cell under cursor",
	"Left click select cell",
	"Right drag pan",
	"Wheel      zoom about the pointer",
	"F1 / H     toggle this help",
	"Esc / Q    quit",
}

// StatusLine renders the HUD text for a parameter snapshot followed by the
// latest status message.
func StatusLine(snap core.ParameterSnapshot, status string) string {
	var parts []string
	add := func(key, format string) {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf(format, p.Value))
		}
	}
	add("sim", "%s")
	add("rule", "%s")
	add("generation", "gen %s")
	add("population", "pop %s")
	if p, ok := snap.Lookup("running"); ok {
		if p.Value == "true" {
			parts = append(parts, "running")
		} else {
			parts = append(parts, "stopped")
		}
	}
	add("tick_ms", "tick %sms")
	add("zoom", "zoom %s")
	add("cursor", "cursor %s")
	line := strings.Join(parts, "  ")
	if status != "" {
		line += "  | " + status
	}
	return line
}

// LibraryLines lists the first entries of the pattern library with the digit
// that loads them.
func LibraryLines(names []string) []string {
	if len(names) == 0 {
		return []string{"Pattern library is empty"}
	}
	lines := []string{"Pattern library"}
	for i, name := range names {
		if i == 9 {
			lines = append(lines, fmt.Sprintf("... %d more", len(names)-9))
			break
		}
		lines = append(lines, fmt.Sprintf("%d  %s", i+1, name))
	}
	return lines
}

// maxPromptLen bounds the pattern name typed into the prompt.
const maxPromptLen = 40

// Prompt collects a single line of text, used for naming library patterns.
type Prompt struct {
	Label string

	active bool
	buf    []rune
}

// Open activates the prompt with an empty buffer.
func (p *Prompt) Open(label string) {
	p.Label = label
	p.active = true
	p.buf = p.buf[:0]
}

// Active reports whether the prompt is taking input.
func (p *Prompt) Active() bool { return p != nil && p.active }

// Type appends printable runes.
func (p *Prompt) Type(runes ...rune) {
	for _, r := range runes {
		if len(p.buf) >= maxPromptLen || !unicode.IsPrint(r) {
			continue
		}
		p.buf = append(p.buf, r)
	}
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.buf) > 0 {
		p.buf = p.buf[:len(p.buf)-1]
	}
}

// Cancel closes the prompt and discards the text.
func (p *Prompt) Cancel() {
	p.active = false
	p.buf = p.buf[:0]
}

// Submit closes the prompt and returns the trimmed text.
func (p *Prompt) Submit() string {
	text := strings.TrimSpace(string(p.buf))
	p.Cancel()
	return text
}

// Text returns the label and typed text for display.
func (p *Prompt) Text() string {
	return p.Label + ": " + string(p.buf) + "_"
}
