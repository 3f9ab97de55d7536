package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/qrpack/internal/state"
)

const headerTitle = " qrpack "

// headerTabs lists the mode tabs in display order.
var headerTabs = []struct {
	Mode  state.Mode
	Label string
}{
	{state.ModeConfig, "Config"},
	{state.ModeURL, "URL"},
}

// Header represents the top header bar with the mode tabs
type Header struct {
	width   int
	mode    state.Mode
	version string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{mode: state.ModeConfig}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetMode sets the highlighted tab
func (h *Header) SetMode(mode state.Mode) {
	h.mode = mode
}

// SetVersion sets the version shown on the right
func (h *Header) SetVersion(version string) {
	h.version = version
}

// TabAt returns the mode whose tab covers column x.
func (h *Header) TabAt(x int) (state.Mode, bool) {
	start := ansi.StringWidth(headerTitle)
	for _, tab := range headerTabs {
		w := ansi.StringWidth(tab.Label) + 2
		if x >= start && x < start+w {
			return tab.Mode, true
		}
		start += w
	}
	return "", false
}

// View renders the header
func (h *Header) View() string {
	var tabs strings.Builder
	for _, tab := range headerTabs {
		if tab.Mode == h.mode {
			tabs.WriteString(HeaderTabActiveStyle.Render(tab.Label))
		} else {
			tabs.WriteString(HeaderTabStyle.Render(tab.Label))
		}
	}
	tabsView := tabs.String()

	var rightText string
	if h.version != "" {
		rightText = h.version + " "
	}

	titleWidth := ansi.StringWidth(headerTitle)
	used := titleWidth + ansi.StringWidth(tabsView)
	paddingLen := h.width - used - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}
	filler := strings.Repeat(" ", paddingLen) + rightText

	total := used + ansi.StringWidth(filler)
	return h.renderGradient(headerTitle, 0, total, true) +
		tabsView +
		h.renderGradient(filler, used, total, false)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content on a slice of a Primary-to-Bg gradient that
// spans total columns, starting at column offset.
func (h *Header) renderGradient(content string, offset, total int, bold bool) string {
	if len(content) == 0 || total <= 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	var result strings.Builder
	for i, r := range []rune(content) {
		t := float64(offset+i) / float64(total)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(bold)
		if bold {
			style = style.Foreground(textColor)
		} else {
			style = style.Foreground(mutedColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
