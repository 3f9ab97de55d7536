package app

import (
	"context"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/chunk"
	"github.com/zhubert/qrpack/internal/clipboard"
	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/export"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/notification"
	"github.com/zhubert/qrpack/internal/state"
)

// User-facing messages.
const (
	msgNoConfigs      = "No configs found."
	msgInvalidURL     = "Please enter a valid URL."
	msgNoQRToCopy     = "No QR code to copy."
	msgCopied         = "QR code copied to clipboard!"
	msgCopyFailed     = "Failed to copy QR code. Please try again."
	msgNoQRToSave     = "No QR code to download."
	msgNoQRsToSave    = "No QR codes to download."
	msgSaveFailed     = "Failed to save QR code."
	msgZipFailed      = "Error creating ZIP file. Please check the log for details."
	msgPasteFailed    = "Failed to read from clipboard."
	msgClipboardEmpty = "Clipboard is empty."

	statusZipping = "Creating ZIP..."
)

// generate builds a fresh chunk set from the active input. In config mode
// the valid config lines are packed into chunks; in URL mode the input must
// parse as an absolute URL. Failures keep the previous chunk set.
func (m *Model) generate() tea.Cmd {
	m.syncInput()
	input := m.pager.ActiveInput()

	var chunks []string
	if m.pager.Mode == state.ModeURL {
		u, err := chunk.ParseURL(input)
		if err != nil {
			logger.Info("App: generate rejected: %v", err)
			return m.ShowFlashError(msgInvalidURL)
		}
		chunks = []string{u}
	} else {
		var err error
		chunks, err = chunk.Generate(input, m.config.MaxChunkLength)
		if err != nil {
			logger.Info("App: generate rejected: %v", err)
			return m.ShowFlashError(msgNoConfigs)
		}
	}

	m.pager.Replace(chunks)
	logger.Info("App: generated %d page(s) in %s mode", len(chunks), m.pager.Mode)
	return m.display()
}

// copyQR renders the current page at full size and puts the PNG on the
// clipboard.
func (m *Model) copyQR() tea.Cmd {
	page, ok := m.currentPage()
	if !ok {
		return m.ShowFlashWarning(msgNoQRToCopy)
	}
	r := m.renderer
	return func() tea.Msg {
		img, err := r.Render(context.Background(), page)
		if err != nil {
			return copyDoneMsg{err: err}
		}
		data, err := clipboard.WriteImage(img)
		if err != nil {
			return copyDoneMsg{err: err}
		}
		return copyDoneMsg{sizeKB: data.SizeKB()}
	}
}

func (m *Model) handleCopyDone(msg copyDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Error("App: copy failed: %v", msg.err)
		return m, m.ShowFlashError(msgCopyFailed)
	}
	logger.Debug("App: copied %d KB image", msg.sizeKB)
	return m, m.ShowFlash(msgCopied, notification.Success, flashShort)
}

// savePNG writes the current page to the output directory.
func (m *Model) savePNG() tea.Cmd {
	page, ok := m.currentPage()
	if !ok {
		return m.ShowFlashWarning(msgNoQRToSave)
	}
	r, dir := m.renderer, m.config.OutputDir
	return func() tea.Msg {
		path, err := export.RenderPNG(context.Background(), r, dir, page)
		return savedMsg{path: path, err: err}
	}
}

func (m *Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Error("App: save failed: %v", msg.err)
		return m, m.ShowFlashError(msgSaveFailed)
	}
	logger.Info("App: saved %s", msg.path)
	return m, m.ShowFlash("Saved "+filepath.Base(msg.path), notification.Success, flashNormal)
}

// saveZip renders every page into qrcodes.zip. It works on a copy of the
// chunk set taken now, so edits made while it runs do not leak in.
func (m *Model) saveZip() tea.Cmd {
	if m.zipping {
		return nil
	}
	if m.pager.Empty() {
		return m.ShowFlashWarning(msgNoQRsToSave)
	}

	m.zipping = true
	m.footer.SetStatus(statusZipping)

	chunks := append([]string(nil), m.pager.Chunks...)
	r, dir := m.renderer, m.config.OutputDir
	logger.Info("App: creating ZIP of %d page(s)", len(chunks))
	return func() tea.Msg {
		path, err := export.SaveZip(context.Background(), dir, r, chunks, export.NopReporter{})
		return zipDoneMsg{path: path, pages: len(chunks), err: err}
	}
}

func (m *Model) handleZipDone(msg zipDoneMsg) (tea.Model, tea.Cmd) {
	m.zipping = false
	m.footer.SetStatus("")

	if msg.err != nil {
		logger.Error("App: ZIP failed (%s): %v", errors.GetKind(msg.err), msg.err)
		return m, m.ShowFlash(msgZipFailed, notification.Error, flashLong)
	}
	logger.Info("App: wrote %s with %d page(s)", msg.path, msg.pages)
	return m, m.ShowFlash("Saved "+filepath.Base(msg.path), notification.Success, flashNormal)
}

// clear empties the active input and the chunk set.
func (m *Model) clear() tea.Cmd {
	m.pager.Clear()
	m.activeEditor().SetValue("")
	logger.Info("App: cleared %s mode", m.pager.Mode)
	return m.display()
}

// paste reads the clipboard text for appending to the active input.
func (m *Model) paste() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadText()
		return pasteMsg{text: text, err: err}
	}
}

func (m *Model) handlePasteResult(msg pasteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Error("App: paste failed: %v", msg.err)
		return m, m.ShowFlashError(msgPasteFailed)
	}
	if msg.text == "" {
		return m, m.ShowFlashInfo(msgClipboardEmpty)
	}
	m.activeEditor().Append(msg.text)
	m.syncInput()
	return m, nil
}

// prevPage and nextPage move through the chunk set, wrapping at the ends.
func (m *Model) prevPage() tea.Cmd {
	if m.pager.Empty() {
		return nil
	}
	m.pager.Prev()
	return m.display()
}

func (m *Model) nextPage() tea.Cmd {
	if m.pager.Empty() {
		return nil
	}
	m.pager.Next()
	return m.display()
}

// switchMode snapshots the outgoing mode, restores the incoming one and
// re-renders.
func (m *Model) switchMode(to state.Mode) tea.Cmd {
	if to == m.pager.Mode {
		return nil
	}
	m.syncInput()
	from := m.pager.Mode
	if err := m.pager.SwitchMode(m.store, to); err != nil {
		logger.Error("App: failed to save %s snapshot: %v", from, err)
	}
	logger.Info("App: switched mode %s -> %s", from, to)
	m.activeEditor().SetValue(m.pager.ActiveInput())

	var cmd tea.Cmd
	if m.focus == FocusEditor {
		cmd = m.activeEditor().Focus()
	}
	m.applyMode()
	return tea.Batch(cmd, m.display())
}

// toggleFocus moves keyboard focus between the editor and the preview.
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusEditor {
		m.focus = FocusPreview
		m.activeEditor().Blur()
		m.preview.SetFocused(true)
		return nil
	}
	m.focus = FocusEditor
	m.preview.SetFocused(false)
	return m.activeEditor().Focus()
}
