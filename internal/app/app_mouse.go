package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/ui"
)

// toastAt returns the ID of the toast drawn at the cell, if any.
func (m *Model) toastAt(x, y int) string {
	toasts := m.toasts.Toasts()
	i, ok := ui.ToastAt(x, y, ui.GetViewContext().TerminalWidth, len(toasts))
	if !ok {
		return ""
	}
	return toasts[i].ID
}

// handleMouseClick dismisses a clicked toast, switches mode from the header
// tabs, or focuses the clicked panel.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}

	if id := m.toastAt(msg.X, msg.Y); id != "" {
		return m, m.hideToast(id)
	}
	if m.overlay != overlayNone {
		return m, nil
	}

	if msg.Y < ui.HeaderHeight {
		if mode, ok := m.header.TabAt(msg.X); ok {
			return m, m.switchMode(mode)
		}
		return m, nil
	}

	onEditor := msg.X < ui.GetViewContext().EditorWidth
	if onEditor != (m.focus == FocusEditor) {
		return m, m.toggleFocus()
	}
	return m, nil
}

// handleMouseMotion pauses the countdown of the toast under the pointer and
// resumes the one it left.
func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	id := m.toastAt(msg.X, msg.Y)
	if id == m.hovered {
		return m, nil
	}

	var cmd tea.Cmd
	if m.hovered != "" && m.toasts.Resume(m.hovered) {
		cmd = m.startFrames()
	}
	if id != "" {
		m.toasts.Pause(id)
	}
	m.hovered = id
	return m, cmd
}
