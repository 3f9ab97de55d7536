package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width    int
	bindings []KeyBinding
	status   string // e.g. "Creating ZIP...", shown ahead of the bindings
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "ctrl+g", Desc: "generate"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the displayed keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetStatus sets the status text; empty clears it
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// Status returns the current status text
func (f *Footer) Status() string {
	return f.status
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string

	if f.status != "" {
		parts = append(parts, FooterStatusStyle.Render(f.status))
	}
	for _, b := range f.bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}
