package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/notification"
)

// Toast lifetimes.
const (
	flashShort  = 2 * time.Second
	flashNormal = 3 * time.Second
	flashLong   = 5 * time.Second

	toastFrameInterval = 60 * time.Millisecond
)

// ShowFlash displays a toast and returns the commands that animate it and,
// when enabled, mirror it to the desktop.
func (m *Model) ShowFlash(text string, kind notification.Kind, d time.Duration) tea.Cmd {
	id := m.toasts.Show(text, kind, d)
	if id == "" {
		return nil
	}

	var mirror tea.Cmd
	if m.config.DesktopNotifications {
		mirror = func() tea.Msg {
			_ = notification.Mirror(kind, text)
			return nil
		}
	}
	return tea.Batch(m.startFrames(), mirror)
}

// ShowFlashError displays an error toast
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, notification.Error, flashNormal)
}

// ShowFlashWarning displays a warning toast
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, notification.Warning, flashNormal)
}

// ShowFlashInfo displays an info toast
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, notification.Info, flashNormal)
}

// ShowFlashSuccess displays a success toast
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, notification.Success, flashShort)
}

// startFrames schedules the next frame unless one is pending or nothing
// is counting down.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.toasts.Animating() {
		return nil
	}
	m.ticking = true
	return m.after(toastFrameInterval, func(t time.Time) tea.Msg {
		return toastFrameMsg{time: t}
	})
}

// hideToast starts a toast's exit and schedules its removal.
func (m *Model) hideToast(id string) tea.Cmd {
	if !m.toasts.Hide(id) {
		return nil
	}
	return m.after(notification.RemovalDelay, func(time.Time) tea.Msg {
		return toastRemoveMsg{id: id}
	})
}

func (m *Model) handleToastFrame(msg toastFrameMsg) (tea.Model, tea.Cmd) {
	m.ticking = false
	var cmds []tea.Cmd
	for _, id := range m.toasts.Tick(msg.time) {
		cmds = append(cmds, m.hideToast(id))
	}
	cmds = append(cmds, m.startFrames())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleToastRemove(msg toastRemoveMsg) (tea.Model, tea.Cmd) {
	m.toasts.Remove(msg.id)
	if m.hovered == msg.id {
		m.hovered = ""
	}
	return m, nil
}
