package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// LogView shows the debug log in a scrollable viewport.
type LogView struct {
	path       string
	viewport   viewport.Model
	followTail bool
	width      int
	height     int
}

// NewLogView creates the viewer for path and loads it, scrolled to the end.
func NewLogView(path string) *LogView {
	l := &LogView{
		path:       path,
		viewport:   viewport.New(),
		followTail: true,
	}
	l.viewport.MouseWheelEnabled = true
	l.viewport.MouseWheelDelta = 3
	l.viewport.SoftWrap = true
	l.Reload()
	return l
}

// Path returns the file being shown.
func (l *LogView) Path() string {
	return l.path
}

// Reload re-reads the file.
func (l *LogView) Reload() {
	content, err := os.ReadFile(l.path)
	switch {
	case os.IsNotExist(err):
		l.viewport.SetContent("No log file yet")
		return
	case err != nil:
		l.viewport.SetContent(fmt.Sprintf("Error reading log file: %v", err))
		return
	}

	l.viewport.SetContent(highlightLogContent(string(content)))
	if l.followTail {
		l.viewport.GotoBottom()
	} else {
		l.viewport.GotoTop()
	}
}

// ToggleFollow switches between following the tail and staying put.
func (l *LogView) ToggleFollow() {
	l.followTail = !l.followTail
	if l.followTail {
		l.viewport.GotoBottom()
	}
}

// FollowTail reports whether the view sticks to the end of the file.
func (l *LogView) FollowTail() bool {
	return l.followTail
}

// SetSize sets the outer panel size, borders included.
func (l *LogView) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.SetWidth(max(width-BorderSize, 1))
	l.viewport.SetHeight(max(height-BorderSize-TitleHeight, 1))
	if l.followTail {
		l.viewport.GotoBottom()
	}
}

// Update forwards scrolling to the viewport.
func (l *LogView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return cmd
}

// View renders the panel.
func (l *LogView) View() string {
	innerW := max(l.width-BorderSize, 1)
	return PanelFocusedStyle.
		Width(l.width).
		Height(l.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, l.navBar(innerW), l.viewport.View()))
}

// navBar renders "Debug Log <path> [Follow] [r: refresh]".
func (l *LogView) navBar(width int) string {
	follow := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("[f: follow]")
	if l.followTail {
		follow = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true).Render("[Follow]")
	}
	hints := " " + follow + " " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("[r: refresh]")

	name := "Debug Log " + l.path
	name = ansi.Truncate(name, max(width-lipgloss.Width(hints)-2, 10), "…")

	return lipgloss.NewStyle().Width(width).Render(PanelTitleStyle.Render(name) + hints)
}

func highlightLogContent(content string) string {
	var sb strings.Builder
	for line := range strings.SplitSeq(strings.TrimRight(content, "\n"), "\n") {
		sb.WriteString(highlightLogLine(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// highlightLogLine colors the level and msg of one slog text line.
func highlightLogLine(line string) string {
	if line == "" {
		return line
	}

	levels := []struct {
		token string
		style lipgloss.Style
	}{
		{"level=ERROR", lipgloss.NewStyle().Foreground(ColorError).Bold(true)},
		{"level=WARN", lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)},
		{"level=INFO", lipgloss.NewStyle().Foreground(ColorInfo)},
		{"level=DEBUG", lipgloss.NewStyle().Foreground(ColorTextMuted)},
	}
	for _, lv := range levels {
		if strings.Contains(line, lv.token) {
			line = strings.Replace(line, lv.token, lv.style.Render(lv.token), 1)
			break
		}
	}

	// Quoted msg values only
	if idx := strings.Index(line, `msg="`); idx >= 0 {
		rest := line[idx+5:]
		if end := strings.Index(rest, `"`); end >= 0 {
			key := lipgloss.NewStyle().Foreground(ColorPrimary).Render("msg=")
			value := lipgloss.NewStyle().Foreground(ColorText).Render(`"` + rest[:end+1])
			line = line[:idx] + key + value + rest[end+1:]
		}
	}
	return line
}
