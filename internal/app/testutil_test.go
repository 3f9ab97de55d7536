package app

import (
	"testing"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/clipboard"
	"github.com/zhubert/qrpack/internal/config"
	"github.com/zhubert/qrpack/internal/keys"
	"github.com/zhubert/qrpack/internal/notification"
	"github.com/zhubert/qrpack/internal/storage"
)

// testConfig creates a config with a small canvas and a temporary output
// directory. The assets directory is empty so the built-in fallbacks draw.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.AssetsDir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	cfg.StatePath = ""
	cfg.CanvasWidth = 1000
	cfg.CanvasHeight = 1400
	cfg.QRSize = 800
	cfg.DesktopNotifications = false
	return cfg
}

// delayed records a message scheduled through Model.after.
type delayed struct {
	d   time.Duration
	msg tea.Msg
}

// testModel creates a model over a fresh memory store, sized 120x40, with
// an in-memory clipboard. Delayed messages are collected instead of slept
// on; see the returned slice.
func testModel(t *testing.T) (*Model, *[]delayed) {
	t.Helper()
	return testModelWith(t, testConfig(t), storage.NewMemoryStore())
}

func testModelWith(t *testing.T, cfg *config.Config, store storage.Store) (*Model, *[]delayed) {
	t.Helper()

	clipboard.SetBackend(&clipboard.MemoryBackend{})
	t.Cleanup(clipboard.ResetBackend)

	m := New(cfg, "0.0.0-test", store)
	scheduled := &[]delayed{}
	m.after = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		*scheduled = append(*scheduled, delayed{d: d, msg: fn(time.Now().Add(d))})
		return nil
	}
	return setSize(m, 120, 40), scheduled
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+g", "left"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlG:
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlZ:
		return tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl}
	case keys.CtrlX:
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	case keys.CtrlV:
		return tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.F1:
		return tea.KeyPressMsg{Code: tea.KeyF1}
	default:
		// Regular character - for single characters, set both Code and Text
		if r, size := utf8.DecodeRuneInString(key); size > 0 && size == len(key) {
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// pressKey sends a key press and runs the resulting command to completion.
func pressKey(t *testing.T, m *Model, key string) *Model {
	t.Helper()
	result, cmd := m.Update(keyPress(key))
	m = result.(*Model)
	runCmd(t, m, cmd)
	return m
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// paste sends a bracketed paste.
func paste(m *Model, text string) *Model {
	result, _ := m.Update(tea.PasteMsg{Content: text})
	return result.(*Model)
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// runCmd executes cmd and feeds the app's own messages back into m until no
// work is left. Messages of other types (cursor blinks, quit) are dropped.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for depth := 0; cmd != nil; depth++ {
		if depth > 20 {
			t.Fatal("runCmd: command chain did not settle")
		}
		msg := cmd()
		cmd = nil
		switch msg := msg.(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				runCmd(t, m, c)
			}
		case renderDoneMsg, copyDoneMsg, savedMsg, zipDoneMsg, pasteMsg, toastFrameMsg, toastRemoveMsg:
			_, cmd = m.Update(msg)
		}
	}
}

// generateConfigs pastes text into the config editor and generates.
func generateConfigs(t *testing.T, m *Model, text string) *Model {
	t.Helper()
	m = paste(m, text)
	return pressKey(t, m, keys.CtrlG)
}

// toastMessages returns the visible toast messages, newest first.
func toastMessages(m *Model) []string {
	var out []string
	for _, toast := range m.toasts.Toasts() {
		out = append(out, toast.Message)
	}
	return out
}

// lastToast returns the newest toast, failing when there is none.
func lastToast(t *testing.T, m *Model) notification.Toast {
	t.Helper()
	toasts := m.toasts.Toasts()
	if len(toasts) == 0 {
		t.Fatal("expected a toast, got none")
	}
	return toasts[0]
}
