package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/keys"
	"github.com/zhubert/qrpack/internal/state"
)

func TestShortcutRegistry_UniqueKeys(t *testing.T) {
	seen := make(map[string]string)
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		for _, k := range append(append([]string(nil), s.Keys...), s.PreviewKeys...) {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, s.Description)
			}
			seen[k] = s.Description
		}
	}
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("shortcut %q has no handler", s.Description)
		}
		if s.Category == "" {
			t.Errorf("shortcut %q has no help category", s.Description)
		}
	}
}

func TestShortcutRegistry_EditorKeysAreChords(t *testing.T) {
	plain := map[string]bool{keys.Tab: true, keys.Escape: true, keys.Left: true, keys.Right: true}
	for _, s := range ShortcutRegistry {
		for _, k := range s.Keys {
			if !strings.HasPrefix(k, "ctrl+") && !plain[k] {
				t.Errorf("shortcut %q uses %q in the editor; plain keys belong in PreviewKeys", s.Description, k)
			}
		}
	}
}

func TestShortcut_Matches(t *testing.T) {
	s := Shortcut{Keys: []string{keys.CtrlG}, PreviewKeys: []string{"g"}}

	tests := []struct {
		key   string
		focus Focus
		want  bool
	}{
		{keys.CtrlG, FocusEditor, true},
		{keys.CtrlG, FocusPreview, true},
		{"g", FocusEditor, false},
		{"g", FocusPreview, true},
		{"x", FocusPreview, false},
	}
	for _, tt := range tests {
		if got := s.matches(tt.key, tt.focus); got != tt.want {
			t.Errorf("matches(%q, %v) = %v, want %v", tt.key, tt.focus, got, tt.want)
		}
	}
}

func TestShortcut_Label(t *testing.T) {
	tests := []struct {
		name  string
		s     Shortcut
		focus Focus
		want  string
	}{
		{"editor", Shortcut{Keys: []string{"ctrl+g"}, PreviewKeys: []string{"g"}}, FocusEditor, "ctrl+g"},
		{"preview", Shortcut{Keys: []string{"ctrl+g"}, PreviewKeys: []string{"g"}}, FocusPreview, "ctrl+g/g"},
		{"display key", Shortcut{Keys: []string{"left"}, PreviewKeys: []string{"p"}, DisplayKey: "←"}, FocusPreview, "←/p"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.label(tt.focus); got != tt.want {
				t.Errorf("label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainKeysTypeIntoEditor(t *testing.T) {
	m, _ := testModel(t)
	m = typeText(m, "gcszxvmnpq")

	if got := m.activeEditor().Value(); got != "gcszxvmnpq" {
		t.Errorf("editor = %q, want the typed keys", got)
	}
	if m.Mode() != state.ModeConfig {
		t.Error("typing m in the editor should not switch mode")
	}
}

func TestPlainKeysRunActionsInPreview(t *testing.T) {
	m, _ := testModel(t)
	m = paste(m, "vless://config1")
	m = sendKey(m, keys.Tab)
	if m.Focus() != FocusPreview {
		t.Fatalf("focus = %v, want Preview", m.Focus())
	}

	m = pressKey(t, m, "g")
	if m.State().Total() != 1 {
		t.Errorf("g should generate, total = %d", m.State().Total())
	}

	m = pressKey(t, m, "m")
	if m.Mode() != state.ModeURL {
		t.Errorf("m should switch mode, got %q", m.Mode())
	}

	if got := m.activeEditor().Value(); got != "" {
		t.Errorf("URL editor = %q, want untouched", got)
	}
}

func TestTabTogglesFocus(t *testing.T) {
	m, _ := testModel(t)

	m = sendKey(m, keys.Tab)
	if m.Focus() != FocusPreview || m.activeEditor().Focused() || !m.preview.Focused() {
		t.Error("tab should move focus to the preview")
	}

	m = sendKey(m, keys.Tab)
	if m.Focus() != FocusEditor || !m.activeEditor().Focused() || m.preview.Focused() {
		t.Error("second tab should return focus to the editor")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name    string
		preview bool
		key     string
		quits   bool
	}{
		{"ctrl+c in editor", false, keys.CtrlC, true},
		{"ctrl+c in preview", true, keys.CtrlC, true},
		{"q in preview", true, "q", true},
		{"q in editor", false, "q", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel(t)
			if tt.preview {
				m = sendKey(m, keys.Tab)
			}
			_, cmd := m.Update(keyPress(tt.key))

			quit := false
			if cmd != nil {
				_, quit = cmd().(tea.QuitMsg)
			}
			if quit != tt.quits {
				t.Errorf("quit = %v, want %v", quit, tt.quits)
			}
		})
	}
}

func TestFooterBindings(t *testing.T) {
	has := func(bindings []string, desc string) bool {
		for _, b := range bindings {
			if b == desc {
				return true
			}
		}
		return false
	}
	descs := func(m *Model) []string {
		var out []string
		for _, b := range m.footerBindings() {
			out = append(out, b.Desc)
		}
		return out
	}

	m, _ := testModel(t)
	got := descs(m)
	for _, want := range []string{"generate", "copy", "save", "zip", "paste", "clear", "mode", "focus", "quit", "help"} {
		if !has(got, want) {
			t.Errorf("config/editor footer %v missing %q", got, want)
		}
	}
	if has(got, "next") {
		t.Error("page keys only apply with the preview focused")
	}

	m = sendKey(m, keys.Tab)
	if got := descs(m); !has(got, "next") || !has(got, "prev") {
		t.Errorf("preview footer %v should list page keys", got)
	}

	m = pressKey(t, m, "m")
	got = descs(m)
	for _, hidden := range []string{"zip", "next", "prev"} {
		if has(got, hidden) {
			t.Errorf("URL footer %v should hide %q", got, hidden)
		}
	}
}

func TestFooterShowsZipStatus(t *testing.T) {
	m, _ := testModel(t)
	m = paste(m, "vless://config1")
	m = pressKey(t, m, keys.CtrlG)
	m.Update(keyPress(keys.CtrlZ))

	if view := m.RenderToString(); !strings.Contains(view, statusZipping) {
		t.Errorf("footer should show %q while zipping", statusZipping)
	}
}
