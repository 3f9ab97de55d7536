package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/keys"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/state"
	"github.com/zhubert/qrpack/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Keys        []string                            // Keys that work in either panel
	PreviewKeys []string                            // Plain keys that only work with the preview focused
	DisplayKey  string                              // Footer label; defaults to the keys joined by "/"
	Description string                              // Human-readable description
	Short       string                              // Footer description; empty hides it from the footer
	ConfigOnly  bool                                // Only applies in config mode
	Category    string                              // Help section
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// The footer is built from it, so new shortcuts show up there as well.
var ShortcutRegistry = []Shortcut{
	{
		Keys:        []string{keys.CtrlG},
		PreviewKeys: []string{"g"},
		Description: "Generate QR codes from the input",
		Short:       "generate",
		Category:    CategoryQR,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.generate() },
	},
	{
		Keys:        []string{keys.CtrlY},
		PreviewKeys: []string{"c"},
		Description: "Copy the current QR code to the clipboard",
		Short:       "copy",
		Category:    CategoryQR,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.copyQR() },
	},
	{
		Keys:        []string{keys.CtrlS},
		PreviewKeys: []string{"s"},
		Description: "Save the current QR code as PNG",
		Short:       "save",
		Category:    CategoryQR,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.savePNG() },
	},
	{
		Keys:        []string{keys.CtrlZ},
		PreviewKeys: []string{"z"},
		Description: "Save every QR code into a ZIP",
		Short:       "zip",
		Category:    CategoryQR,
		ConfigOnly:  true,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.saveZip() },
		Condition:   func(m *Model) bool { return !m.zipping },
	},
	{
		Keys:        []string{keys.Left},
		PreviewKeys: []string{"p"},
		DisplayKey:  "←",
		Description: "Previous page",
		Short:       "prev",
		Category:    CategoryQR,
		ConfigOnly:  true,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.prevPage() },
		Condition:   func(m *Model) bool { return m.focus == FocusPreview },
	},
	{
		Keys:        []string{keys.Right},
		PreviewKeys: []string{"n"},
		DisplayKey:  "→",
		Description: "Next page",
		Short:       "next",
		Category:    CategoryQR,
		ConfigOnly:  true,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.nextPage() },
		Condition:   func(m *Model) bool { return m.focus == FocusPreview },
	},
	{
		Keys:        []string{keys.CtrlV},
		PreviewKeys: []string{"v"},
		Description: "Paste clipboard text into the input",
		Short:       "paste",
		Category:    CategoryInput,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.paste() },
	},
	{
		Keys:        []string{keys.CtrlX},
		PreviewKeys: []string{"x"},
		Description: "Clear the input and the QR codes",
		Short:       "clear",
		Category:    CategoryInput,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.clear() },
	},
	{
		Keys:        []string{keys.CtrlT},
		PreviewKeys: []string{"m"},
		Description: "Switch between config and URL mode",
		Short:       "mode",
		Category:    CategoryInput,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.switchMode(m.pager.Mode.Other()) },
	},
	{
		Keys:        []string{keys.Tab},
		Description: "Switch between editor and preview",
		Short:       "focus",
		Category:    CategoryInput,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.toggleFocus() },
	},
	{
		Keys:        []string{keys.Escape},
		Description: "Dismiss the newest notification",
		Category:    CategoryGeneral,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.hideToast(m.toasts.Newest()) },
		Condition:   func(m *Model) bool { return m.toasts.Newest() != "" },
	},
	{
		Keys:        []string{keys.CtrlL},
		PreviewKeys: []string{"l"},
		Description: "View the debug log",
		Category:    CategoryGeneral,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.openLogs() },
	},
	{
		Keys:        []string{keys.CtrlC},
		PreviewKeys: []string{"q"},
		Description: "Quit",
		Short:       "quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid an initialization cycle: the
// help list is built from ShortcutRegistry. ExecuteShortcut handles it.
var helpShortcut = Shortcut{
	Keys:        []string{keys.F1},
	PreviewKeys: []string{"?"},
	Description: "Show keyboard shortcuts",
	Short:       "help",
	Category:    CategoryGeneral,
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.cancelRender()
	logger.Info("App: quitting")
	return m, tea.Quit
}

// matches reports whether key triggers s with the given focus.
func (s Shortcut) matches(key string, focus Focus) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	if focus != FocusPreview {
		return false
	}
	for _, k := range s.PreviewKeys {
		if k == key {
			return true
		}
	}
	return false
}

// label returns the footer key label for the given focus.
func (s Shortcut) label(focus Focus) string {
	if s.DisplayKey != "" && focus != FocusPreview {
		return s.DisplayKey
	}
	all := s.Keys
	if focus == FocusPreview {
		all = append(append([]string(nil), s.Keys...), s.PreviewKeys...)
		if s.DisplayKey != "" {
			all[0] = s.DisplayKey
		}
	}
	return strings.Join(all, "/")
}

// isShortcutApplicable checks whether a shortcut's guards pass.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.ConfigOnly && m.pager.Mode != state.ModeConfig {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns the updated model, command, and whether the shortcut was handled.
// A shortcut whose guards fail is not handled, so the key falls through to
// the focused editor.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if helpShortcut.matches(key, m.focus) {
		logger.Debug("Shortcut: executing %q", key)
		return m, m.openHelp(), true
	}

	for _, s := range ShortcutRegistry {
		if !s.matches(key, m.focus) {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.Debug("Shortcut: guard failed for %q (mode=%s focus=%s)", key, m.pager.Mode, m.focus)
			return m, nil, false
		}
		logger.Debug("Shortcut: executing %q", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// footerBindings lists the shortcuts that currently apply.
func (m *Model) footerBindings() []ui.KeyBinding {
	var bindings []ui.KeyBinding
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if s.Short == "" || !m.isShortcutApplicable(s) {
			continue
		}
		bindings = append(bindings, ui.KeyBinding{Key: s.label(m.focus), Desc: s.Short})
	}
	return bindings
}

// updateFooterContext refreshes the footer before rendering.
func (m *Model) updateFooterContext() {
	m.footer.SetBindings(m.footerBindings())
	if m.zipping {
		m.footer.SetStatus(statusZipping)
	}
}
