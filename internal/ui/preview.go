package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Preview is the panel showing the current QR symbol and page counter.
type Preview struct {
	width     int
	height    int
	focused   bool
	qr        string
	counter   string
	rendering bool
	message   string
}

// NewPreview creates an empty preview panel
func NewPreview() *Preview {
	return &Preview{}
}

// SetSize sets the outer panel size, borders included.
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused toggles the focused border.
func (p *Preview) SetFocused(focused bool) {
	p.focused = focused
}

// Focused reports whether the preview has focus.
func (p *Preview) Focused() bool {
	return p.focused
}

// SetQR shows a rendered symbol and ends the rendering state.
func (p *Preview) SetQR(qr string) {
	p.qr = qr
	p.rendering = false
}

// QR returns the symbol currently shown.
func (p *Preview) QR() string {
	return p.qr
}

// SetCounter sets the page label; empty hides it.
func (p *Preview) SetCounter(label string) {
	p.counter = label
}

// Counter returns the page label.
func (p *Preview) Counter() string {
	return p.counter
}

// SetRendering marks a render in flight.
func (p *Preview) SetRendering(rendering bool) {
	p.rendering = rendering
}

// SetMessage sets the text shown when there is no symbol.
func (p *Preview) SetMessage(msg string) {
	p.message = msg
}

// Clear drops the symbol and the counter.
func (p *Preview) Clear() {
	p.qr = ""
	p.counter = ""
	p.rendering = false
}

// View renders the panel.
func (p *Preview) View() string {
	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}

	innerW := p.width - BorderSize
	innerH := p.height - BorderSize - TitleHeight
	if p.counter != "" {
		innerH -= TitleHeight
	}

	var body string
	switch {
	case p.qr != "":
		body = p.symbolView(innerW, innerH)
	case p.rendering:
		body = StatusLoadingStyle.Render("Rendering...")
	case p.message != "":
		body = PlaceholderStyle.Render(p.message)
	default:
		body = PlaceholderStyle.Render("Nothing generated yet")
	}
	body = lipgloss.Place(max(innerW, 1), max(innerH, 1), lipgloss.Center, lipgloss.Center, body)

	parts := []string{PanelTitleStyle.Render("Preview"), body}
	if p.counter != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(max(innerW, 1), lipgloss.Center, PageCounterStyle.Render(p.counter)))
	}

	return style.
		Width(p.width).
		Height(p.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// symbolView returns the symbol, or a hint when the panel is too small to
// hold it without clipping modules.
func (p *Preview) symbolView(width, height int) string {
	lines := strings.Split(p.qr, "\n")
	need := 0
	for _, l := range lines {
		need = max(need, ansi.StringWidth(l))
	}
	if need > width || len(lines) > height {
		return PlaceholderStyle.Render(ansi.Truncate(
			fmt.Sprintf("Enlarge the terminal to %dx%d to preview", need+BorderSize, len(lines)+BorderSize+2*TitleHeight),
			max(width, 1), "…"))
	}
	return QRStyle.Render(p.qr)
}
