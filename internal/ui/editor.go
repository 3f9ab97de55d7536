package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/qrpack/internal/chunk"
	"github.com/zhubert/qrpack/internal/sanitize"
)

// Editor is an input panel: a titled textarea with a counter line beneath.
type Editor struct {
	input       textarea.Model
	title       string
	showConfigs bool
	width       int
	height      int
}

// NewEditor creates an editor. When showConfigs is set the counter line
// also reports how many config lines the text holds.
func NewEditor(title, placeholder string, showConfigs bool) *Editor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0

	return &Editor{
		input:       ta,
		title:       title,
		showConfigs: showConfigs,
	}
}

// SetSize sets the outer panel size, borders included.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	innerW := width - BorderSize
	innerH := height - BorderSize - TitleHeight - CounterHeight
	e.input.SetWidth(max(innerW, 1))
	e.input.SetHeight(max(innerH, 1))
}

// Focus gives the textarea keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	return e.input.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.input.Blur()
}

// Focused reports whether the textarea has focus.
func (e *Editor) Focused() bool {
	return e.input.Focused()
}

// Value returns the text.
func (e *Editor) Value() string {
	return e.input.Value()
}

// SetValue replaces the text and puts the cursor at the end.
func (e *Editor) SetValue(text string) {
	e.input.SetValue(text)
}

// Append cleans text and adds it after the current value, separated by a
// newline when the editor is not empty.
func (e *Editor) Append(text string) {
	text = sanitize.Clean(text)
	if e.input.Value() != "" {
		text = "\n" + text
	}
	e.input.MoveToEnd()
	e.input.InsertString(text)
	e.Sanitize()
}

// Paste inserts text at the cursor after stripping disallowed script.
func (e *Editor) Paste(text string) {
	e.input.InsertString(sanitize.StripDisallowedScript(text))
	e.Sanitize()
}

// Update forwards msg to the textarea and sanitizes the result. It reports
// whether the text changed.
func (e *Editor) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := e.input.Value()
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.Sanitize()
	return cmd, e.input.Value() != before
}

// Sanitize cleans the text in place, keeping the cursor at the same rune
// offset clamped to the cleaned text. It reports whether anything changed.
func (e *Editor) Sanitize() bool {
	value := e.input.Value()
	cleaned := sanitize.Clean(value)
	if cleaned == value {
		return false
	}

	pos := sanitize.ClampCursor(e.cursorOffset(), cleaned)
	runes := []rune(cleaned)
	e.input.SetValue(string(runes[pos:]))
	e.input.MoveToBegin()
	e.input.InsertString(string(runes[:pos]))
	return true
}

// cursorOffset returns the cursor position as a rune offset into Value.
func (e *Editor) cursorOffset() int {
	lines := strings.Split(e.input.Value(), "\n")
	row := min(e.input.Line(), len(lines)-1)

	offset := 0
	for _, line := range lines[:row] {
		offset += len([]rune(line)) + 1
	}
	info := e.input.LineInfo()
	return offset + info.StartColumn + info.ColumnOffset
}

// Counter returns the counter line text.
func (e *Editor) Counter() string {
	text := e.input.Value()
	label := chunk.CharLabel(chunk.CountChars(text))
	if e.showConfigs {
		label += " · " + chunk.ConfigLabel(chunk.CountValidConfigs(text))
	}
	return label
}

// View renders the panel.
func (e *Editor) View() string {
	style := PanelStyle
	if e.input.Focused() {
		style = PanelFocusedStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(e.title),
		e.input.View(),
		CounterStyle.Render(e.Counter()),
	)

	return style.
		Width(e.width).
		Height(e.height).
		Render(content)
}
