package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/logger"
)

// Update handles all messages. This is the core Bubble Tea update function.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.PasteMsg:
		return m.handlePaste(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseWheelMsg:
		if m.overlay == overlayLogs {
			return m, m.logs.Update(msg)
		}
		return m, nil

	case renderDoneMsg:
		return m.handleRenderDone(msg)

	case copyDoneMsg:
		return m.handleCopyDone(msg)

	case savedMsg:
		return m.handleSaved(msg)

	case zipDoneMsg:
		return m.handleZipDone(msg)

	case pasteMsg:
		return m.handlePasteResult(msg)

	case toastFrameMsg:
		return m.handleToastFrame(msg)

	case toastRemoveMsg:
		return m.handleToastRemove(msg)
	}

	// Cursor blink and other component messages go to the editor
	cmd, _ := m.activeEditor().Update(msg)
	return m, cmd
}

// handleKeyPress runs a shortcut if one matches, otherwise types into the
// focused editor.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	key := msg.String()
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	if m.focus != FocusEditor {
		return m, nil
	}

	cmd, changed := m.activeEditor().Update(msg)
	if changed {
		m.syncInput()
	}
	return m, cmd
}

// handlePaste inserts bracketed-paste text into the focused editor after
// sanitizing it.
func (m *Model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	if m.focus != FocusEditor || m.overlay != overlayNone {
		logger.Debug("App: ignoring paste outside the editor")
		return m, nil
	}
	m.activeEditor().Paste(msg.Content)
	m.syncInput()
	return m, nil
}
