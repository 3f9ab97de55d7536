package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/chunk"
	"github.com/zhubert/qrpack/internal/compositor"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/state"
)

// display shows the current page: an empty chunk set clears the preview,
// otherwise a render of the current chunk is dispatched and the page
// counter updated. The state is persisted either way.
func (m *Model) display() tea.Cmd {
	defer m.persist()
	m.cancelRender()

	text, ok := m.pager.Current()
	if !ok {
		m.preview.Clear()
		return nil
	}

	if m.pager.Mode == state.ModeConfig {
		m.preview.SetCounter(chunk.PageLabel(m.pager.Index, m.pager.Total()))
	} else {
		m.preview.SetCounter("")
	}
	m.preview.SetQR("")
	m.preview.SetRendering(true)

	m.renderToken++
	ctx, cancel := context.WithCancel(context.Background())
	m.renderCancel = cancel
	return renderPreviewCmd(ctx, m.renderToken, text)
}

// renderPreviewCmd encodes text for the terminal preview.
func renderPreviewCmd(ctx context.Context, token uint64, text string) tea.Cmd {
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return renderDoneMsg{token: token, err: err}
		}
		qr, err := compositor.Preview(text)
		return renderDoneMsg{token: token, qr: qr, err: err}
	}
}

// currentPage returns the render request for the page on screen.
func (m *Model) currentPage() (compositor.Page, bool) {
	text, ok := m.pager.Current()
	if !ok {
		return compositor.Page{}, false
	}
	return compositor.Page{
		Text:  text,
		Index: m.pager.Index,
		Total: m.pager.Total(),
		Mode:  m.pager.Mode,
	}, true
}

func (m *Model) handleRenderDone(msg renderDoneMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.renderToken {
		logger.Debug("App: dropping stale render token=%d current=%d", msg.token, m.renderToken)
		return m, nil
	}
	m.renderCancel = nil

	if msg.err != nil {
		logger.Error("App: preview render failed: %v", msg.err)
		m.preview.SetRendering(false)
		return m, m.ShowFlashError("Failed to generate QR code.")
	}
	m.preview.SetQR(msg.qr)
	return m, nil
}
