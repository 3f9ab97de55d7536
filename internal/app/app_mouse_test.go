package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/qrpack/internal/keys"
	"github.com/zhubert/qrpack/internal/notification"
	"github.com/zhubert/qrpack/internal/state"
	"github.com/zhubert/qrpack/internal/ui"
)

// A screen cell inside the newest toast of a 120 column model.
const (
	toastX = 119
	toastY = ui.HeaderHeight
)

func TestToast_FrameExpiresAndRemoves(t *testing.T) {
	m, scheduled := testModel(t)
	m = pressKey(t, m, keys.CtrlY)
	id := lastToast(t, m).ID

	if len(*scheduled) != 1 {
		t.Fatalf("scheduled = %d messages, want one frame", len(*scheduled))
	}
	if _, ok := (*scheduled)[0].msg.(toastFrameMsg); !ok {
		t.Fatalf("scheduled %T, want toastFrameMsg", (*scheduled)[0].msg)
	}
	if (*scheduled)[0].d != toastFrameInterval {
		t.Errorf("frame interval = %v, want %v", (*scheduled)[0].d, toastFrameInterval)
	}

	// A frame before expiry keeps the toast and schedules the next frame.
	m.Update(toastFrameMsg{time: time.Now().Add(time.Second)})
	if lastToast(t, m).Hiding {
		t.Fatal("toast should still be visible after one second")
	}
	if len(*scheduled) != 2 {
		t.Fatalf("scheduled = %d, want a second frame", len(*scheduled))
	}

	m.Update(toastFrameMsg{time: time.Now().Add(flashNormal + time.Second)})
	if !lastToast(t, m).Hiding {
		t.Fatal("toast should be hiding after its duration")
	}
	removal, ok := (*scheduled)[len(*scheduled)-1].msg.(toastRemoveMsg)
	if !ok || removal.id != id {
		t.Fatalf("last scheduled = %#v, want removal of %s", (*scheduled)[len(*scheduled)-1].msg, id)
	}
	if (*scheduled)[len(*scheduled)-1].d != notification.RemovalDelay {
		t.Errorf("removal delay = %v, want %v", (*scheduled)[len(*scheduled)-1].d, notification.RemovalDelay)
	}

	m.Update(removal)
	if m.toasts.Len() != 0 {
		t.Errorf("toasts = %v, want none after removal", toastMessages(m))
	}
	if m.ticking {
		t.Error("frames should stop once nothing counts down")
	}
}

func TestToast_NewestFirst(t *testing.T) {
	m, _ := testModel(t)
	m = pressKey(t, m, keys.CtrlY)
	m = pressKey(t, m, keys.CtrlS)

	got := toastMessages(m)
	want := []string{msgNoQRToSave, msgNoQRToCopy}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("toasts = %q, want %q", got, want)
	}
}

func TestToast_EscDismissesNewest(t *testing.T) {
	m, scheduled := testModel(t)
	m = pressKey(t, m, keys.CtrlY)
	m = pressKey(t, m, keys.CtrlS)
	newest := lastToast(t, m).ID

	m = sendKey(m, keys.Escape)

	toasts := m.toasts.Toasts()
	if !toasts[0].Hiding || toasts[0].ID != newest {
		t.Error("esc should hide the newest toast")
	}
	if toasts[1].Hiding {
		t.Error("esc should leave older toasts alone")
	}
	last := (*scheduled)[len(*scheduled)-1].msg
	if r, ok := last.(toastRemoveMsg); !ok || r.id != newest {
		t.Errorf("last scheduled = %#v, want removal of newest", last)
	}
}

func TestToast_EscWithoutToastsFallsThrough(t *testing.T) {
	m, _ := testModel(t)
	if _, _, handled := m.ExecuteShortcut(keys.Escape); handled {
		t.Error("esc should not be handled without toasts")
	}
}

func TestToast_HoverPausesAndResumes(t *testing.T) {
	m, _ := testModel(t)
	m = pressKey(t, m, keys.CtrlY)
	id := lastToast(t, m).ID

	m.Update(tea.MouseMotionMsg{X: toastX, Y: toastY})
	if m.hovered != id {
		t.Fatalf("hovered = %q, want %q", m.hovered, id)
	}
	if !lastToast(t, m).Paused() {
		t.Error("hovering should pause the countdown")
	}

	m.ticking = false
	m.Update(tea.MouseMotionMsg{X: 0, Y: 10})
	if m.hovered != "" {
		t.Errorf("hovered = %q after leaving", m.hovered)
	}
	if lastToast(t, m).Paused() {
		t.Error("leaving should resume the countdown")
	}
	if !m.ticking {
		t.Error("resuming should restart frames")
	}
}

func TestToast_ClickHides(t *testing.T) {
	m, _ := testModel(t)
	m = pressKey(t, m, keys.CtrlY)

	m.Update(tea.MouseClickMsg{X: toastX, Y: toastY + 1, Button: tea.MouseLeft})
	if !lastToast(t, m).Hiding {
		t.Error("clicking a toast should hide it")
	}
}

func TestHeaderTabClickSwitchesMode(t *testing.T) {
	m, _ := testModel(t)

	urlX := -1
	for x := 0; x < 60; x++ {
		if mode, ok := m.header.TabAt(x); ok && mode == state.ModeURL {
			urlX = x
			break
		}
	}
	if urlX < 0 {
		t.Fatal("no URL tab in the header")
	}

	result, cmd := m.Update(tea.MouseClickMsg{X: urlX, Y: 0, Button: tea.MouseLeft})
	m = result.(*Model)
	runCmd(t, m, cmd)
	if m.Mode() != state.ModeURL {
		t.Errorf("mode = %q, want url", m.Mode())
	}
}

func TestClickFocusesPanel(t *testing.T) {
	m, _ := testModel(t)
	editorWidth := ui.GetViewContext().EditorWidth

	m.Update(tea.MouseClickMsg{X: editorWidth + 5, Y: 10, Button: tea.MouseLeft})
	if m.Focus() != FocusPreview {
		t.Errorf("focus = %v, want Preview", m.Focus())
	}

	m.Update(tea.MouseClickMsg{X: 2, Y: 10, Button: tea.MouseLeft})
	if m.Focus() != FocusEditor {
		t.Errorf("focus = %v, want Editor", m.Focus())
	}

	m.Update(tea.MouseClickMsg{X: editorWidth + 5, Y: 10, Button: tea.MouseRight})
	if m.Focus() != FocusEditor {
		t.Error("right click should not move focus")
	}
}

func TestView(t *testing.T) {
	m, _ := testModel(t)
	m = paste(m, "vless://config1\nvmess://config2")
	m = pressKey(t, m, keys.CtrlG)
	m = pressKey(t, m, keys.CtrlS)

	view := ansi.Strip(m.RenderToString())
	for _, want := range []string{"qrpack", "Configs", "Preview", "1 of 1", "2 configs", "Saved qrcode-1.png", "generate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
}

func TestView_Loading(t *testing.T) {
	m := New(testConfig(t), "test", nil)
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("RenderToString() = %q before sizing", got)
	}
	v := m.View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeAllMotion {
		t.Error("view should use the alt screen with all-motion mouse reporting")
	}
}
