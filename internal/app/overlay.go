package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/keys"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/ui"
)

// overlay is a full-width panel drawn in place of the editor and preview.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayLogs
)

// Help categories, in display order.
const (
	CategoryQR      = "QR Codes"
	CategoryInput   = "Input"
	CategoryGeneral = "General"
)

var categoryOrder = []string{CategoryQR, CategoryInput, CategoryGeneral}

// helpSections lists the shortcuts that currently apply, grouped by category.
func (m *Model) helpSections() []ui.HelpSection {
	byCategory := make(map[string][]ui.HelpShortcut)
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if !m.isShortcutApplicable(s) {
			continue
		}
		all := append(append([]string(nil), s.Keys...), s.PreviewKeys...)
		if s.DisplayKey != "" {
			all[0] = s.DisplayKey
		}
		row := ui.HelpShortcut{Key: strings.Join(all, "/"), Desc: s.Description}
		if s.Handler != nil {
			row.Trigger = s.Keys[0]
		}
		byCategory[s.Category] = append(byCategory[s.Category], row)
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if rows := byCategory[cat]; len(rows) > 0 {
			sections = append(sections, ui.HelpSection{Title: cat, Shortcuts: rows})
		}
	}
	return sections
}

// openHelp shows the shortcut list.
func (m *Model) openHelp() tea.Cmd {
	m.help = ui.NewHelpView(m.helpSections())
	m.overlay = overlayHelp
	m.sizeOverlay()
	return nil
}

// openLogs shows the debug log.
func (m *Model) openLogs() tea.Cmd {
	m.logs = ui.NewLogView(m.logPath)
	m.overlay = overlayLogs
	m.sizeOverlay()
	logger.Debug("App: viewing log %s", m.logPath)
	return nil
}

func (m *Model) closeOverlay() {
	m.overlay = overlayNone
	m.help = nil
	m.logs = nil
}

// sizeOverlay gives the open overlay the content area.
func (m *Model) sizeOverlay() {
	ctx := ui.GetViewContext()
	switch m.overlay {
	case overlayHelp:
		m.help.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	case overlayLogs:
		m.logs.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	}
}

// handleOverlayKey routes a key press while an overlay is open. ctrl+c
// still quits.
func (m *Model) handleOverlayKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return shortcutQuit(m)
	}

	switch m.overlay {
	case overlayHelp:
		if m.help.Filtering() {
			return m, m.help.Update(msg)
		}
		switch key {
		case keys.Escape, keys.F1, "?", "q":
			m.closeOverlay()
			return m, nil
		case keys.Enter:
			sel := m.help.Selected()
			m.closeOverlay()
			if sel == nil || sel.Trigger == "" {
				return m, nil
			}
			result, cmd, _ := m.ExecuteShortcut(sel.Trigger)
			return result, cmd
		}
		return m, m.help.Update(msg)

	case overlayLogs:
		switch key {
		case keys.Escape, keys.CtrlL, "l", "q":
			m.closeOverlay()
			return m, nil
		case "f":
			m.logs.ToggleFollow()
			return m, nil
		case "r":
			m.logs.Reload()
			return m, nil
		}
		return m, m.logs.Update(msg)
	}
	return m, nil
}

// overlayView renders the open overlay.
func (m *Model) overlayView() string {
	switch m.overlay {
	case overlayHelp:
		return m.help.View()
	case overlayLogs:
		return m.logs.View()
	}
	return ""
}
