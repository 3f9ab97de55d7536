package ui

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpShortcut is one row of the help panel.
type HelpShortcut struct {
	Key     string // Label shown in the key column
	Desc    string
	Trigger string // Key to run when the row is chosen; empty for display-only rows
}

// HelpSection groups shortcuts under a title.
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem is a section header. It is not filterable.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (d helpDelegate) Height() int                              { return 1 }
func (d helpDelegate) Spacing() int                             { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))

	case helpShortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(helpKeyWidth)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

const helpKeyWidth = 16

// HelpView lists keyboard shortcuts in a filterable list.
type HelpView struct {
	list   list.Model
	width  int
	height int
}

// NewHelpView creates the panel from sections. The cursor starts on the
// first shortcut.
func NewHelpView(sections []HelpSection) *HelpView {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, s := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: s})
		}
	}

	l := list.New(items, helpDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}
	return &HelpView{list: l}
}

// SetSize sets the outer panel size, borders included.
func (h *HelpView) SetSize(width, height int) {
	h.width = width
	h.height = height
	// Border, title and hint lines
	h.list.SetSize(max(width-BorderSize, 1), max(height-BorderSize-2*TitleHeight, 1))
}

// Update forwards navigation and filter input to the list.
func (h *HelpView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return cmd
}

// Filtering reports whether the filter prompt has the keyboard.
func (h *HelpView) Filtering() bool {
	return h.list.SettingFilter()
}

// Selected returns the highlighted shortcut, or nil on a section header.
func (h *HelpView) Selected() *HelpShortcut {
	if si, ok := h.list.SelectedItem().(helpShortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// Len returns the number of rows, section headers included.
func (h *HelpView) Len() int {
	return len(h.list.Items())
}

// View renders the panel.
func (h *HelpView) View() string {
	hint := "/: filter  ↑/↓: navigate  enter: run  esc: close"
	if h.Filtering() {
		hint = "type to filter  enter: apply  esc: cancel"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("Keyboard Shortcuts"),
		h.list.View(),
		PlaceholderStyle.Render(hint),
	)
	return PanelFocusedStyle.Width(h.width).Height(h.height).Render(body)
}
