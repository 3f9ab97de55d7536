package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/qrpack/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	// All-motion reporting so hovering a toast pauses it without a button held.
	v.MouseMode = tea.MouseModeAllMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	var panels string
	if m.overlay != overlayNone {
		panels = m.overlayView()
	} else {
		panels = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.activeEditor().View(),
			m.preview.View(),
		)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)

	toasts := ui.RenderToasts(m.toasts.Toasts())
	return ui.Overlay(view, toasts, ui.GetViewContext().TerminalWidth, ui.HeaderHeight)
}
