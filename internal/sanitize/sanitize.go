// Package sanitize cleans user-typed and pasted config text before it is
// stored or parsed.
package sanitize

import (
	"strings"
	"unicode/utf8"
)

// isDisallowed reports whether r belongs to the Arabic-script block or one of
// the Persian-specific code points and directional marks stripped from input.
func isDisallowed(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF:
		return true
	case r == 0xFB8A, r == 0x200C, r == 0x200F:
		return true
	}
	return false
}

// containsDisallowed reports whether line has at least one disallowed rune.
func containsDisallowed(line string) bool {
	return strings.IndexFunc(line, isDisallowed) >= 0
}

// StripDisallowedScript drops every line that contains a disallowed code
// point. A single flagged rune removes the whole line.
func StripDisallowedScript(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !containsDisallowed(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// TrimLeadingBlankLines removes lines from the top while they are empty or
// whitespace-only.
func TrimLeadingBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

// Clean applies StripDisallowedScript then TrimLeadingBlankLines.
func Clean(text string) string {
	return TrimLeadingBlankLines(StripDisallowedScript(text))
}

// ClampCursor clamps a rune offset to the rune length of text.
func ClampCursor(pos int, text string) int {
	if pos < 0 {
		return 0
	}
	return min(pos, utf8.RuneCountInString(text))
}
