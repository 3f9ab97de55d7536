// Package chunk recognises proxy config lines and packs them into pages
// small enough to fit a single QR symbol.
package chunk

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/zhubert/qrpack/internal/errors"
)

// MaxLength is the largest chunk, in UTF-16 code units, packed onto one page.
const MaxLength = 1273

// Prefixes are the scheme prefixes a line must start with to count as a config.
var Prefixes = []string{
	"vless://",
	"vmess://",
	"hysteria2://",
	"ss://",
	"trojan://",
}

// IsConfigLine reports whether line starts with one of Prefixes.
// Matching is case-sensitive and checks the prefix only.
func IsConfigLine(line string) bool {
	for _, p := range Prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// FilterValidLines trims text, splits it on newlines and keeps the config lines.
func FilterValidLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if IsConfigLine(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// Split packs lines greedily, left to right. A line joins the current chunk
// unless the joined result would exceed maxLength, in which case the current
// chunk is sealed and the line starts a new one. A line longer than
// maxLength on its own is kept whole as an oversized chunk.
func Split(lines []string, maxLength int) []string {
	var chunks []string
	current := ""

	for _, line := range lines {
		if CountChars(current+"\n"+line) > maxLength {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			current = line
			continue
		}
		if current != "" {
			current += "\n"
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	return chunks
}

// Generate filters text and splits the result into MaxLength chunks.
// It returns a NoConfigs error when no line is recognised.
func Generate(text string, maxLength int) ([]string, error) {
	lines := FilterValidLines(text)
	if len(lines) == 0 {
		return nil, errors.NoConfigs()
	}
	return Split(lines, maxLength), nil
}

// CountChars returns the length of text in UTF-16 code units.
func CountChars(text string) int {
	n := 0
	for _, r := range text {
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// CountValidConfigs counts config lines without trimming text first.
func CountValidConfigs(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if IsConfigLine(line) {
			n++
		}
	}
	return n
}

func plural(n int, noun string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// CharLabel formats the character counter, e.g. "1 char" or "12 chars".
func CharLabel(n int) string { return plural(n, "char") }

// ConfigLabel formats the config counter, e.g. "0 config" or "2 configs".
func ConfigLabel(n int) string { return plural(n, "config") }

// PageLabel formats the pagination counter ("2 of 5"). index is zero based.
func PageLabel(index, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d", index+1, total)
}

// ParseURL validates text for URL mode. The trimmed text must be an absolute
// URL with a host or an opaque part.
func ParseURL(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.InvalidURL(trimmed, nil)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", errors.InvalidURL(trimmed, err)
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "" && u.Path == "") {
		return "", errors.InvalidURL(trimmed, nil)
	}
	if strings.ContainsAny(trimmed, " \t\n") {
		return "", errors.InvalidURL(trimmed, nil)
	}
	return trimmed, nil
}
