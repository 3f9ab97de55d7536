package app

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/qrpack/internal/compositor"
	"github.com/zhubert/qrpack/internal/config"
	"github.com/zhubert/qrpack/internal/export"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/notification"
	"github.com/zhubert/qrpack/internal/state"
	"github.com/zhubert/qrpack/internal/storage"
	"github.com/zhubert/qrpack/internal/ui"
)

// Editor titles and placeholders per mode.
const (
	configTitle       = "Configs"
	configPlaceholder = "Paste vless://, vmess://, ss://, trojan:// or hysteria2:// lines"
	urlTitle          = "URL"
	urlPlaceholder    = "https://example.com"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	store   storage.Store

	header  *ui.Header
	footer  *ui.Footer
	editors map[state.Mode]*ui.Editor
	preview *ui.Preview
	toasts  *notification.Center

	pager    *state.State
	renderer export.Renderer

	width  int
	height int
	focus  Focus

	// Preview renders in flight are tagged with renderToken; only the
	// latest one is shown.
	renderToken  uint64
	renderCancel context.CancelFunc

	overlay overlay
	help    *ui.HelpView
	logs    *ui.LogView
	logPath string

	zipping bool
	ticking bool   // a toast frame tick is scheduled
	hovered string // toast under the mouse pointer

	// after schedules delayed messages. Tests replace it to keep commands
	// from sleeping.
	after func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// New creates the model, restoring the last saved state from store.
func New(cfg *config.Config, version string, store storage.Store) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if cfg.Theme != "" {
		ui.SetThemeByName(cfg.Theme)
	}

	rec, err := state.Load(store)
	if err != nil {
		logger.Warn("App: starting with blank state: %v", err)
	}
	pager := state.FromRecord(rec)

	toasts := notification.NewCenter(nil)
	toasts.SetEnabled(cfg.NotificationsEnabled)

	m := &Model{
		config:  cfg,
		version: version,
		store:   store,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		editors: map[state.Mode]*ui.Editor{
			state.ModeConfig: ui.NewEditor(configTitle, configPlaceholder, true),
			state.ModeURL:    ui.NewEditor(urlTitle, urlPlaceholder, false),
		},
		preview: ui.NewPreview(),
		toasts:  toasts,
		pager:   pager,
		renderer: compositor.New(compositor.OpenAssets(cfg.AssetsDir), compositor.Options{
			Width:  cfg.CanvasWidth,
			Height: cfg.CanvasHeight,
			QRSize: cfg.QRSize,
		}),
		focus:   FocusEditor,
		logPath: logger.DefaultLogPath,
		after:   tea.Tick,
	}

	m.editors[state.ModeConfig].SetValue(pager.Input)
	m.editors[state.ModeURL].SetValue(pager.URL)
	m.header.SetVersion(version)
	m.activeEditor().Focus()
	m.applyMode()

	logger.Info("App: started in %s mode with %d page(s)", pager.Mode, pager.Total())
	return m
}

// Init implements tea.Model. It starts the cursor blink and renders the
// restored page, if any.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.display())
}

// Mode returns the active generator mode.
func (m *Model) Mode() state.Mode {
	return m.pager.Mode
}

// State returns the live generator state.
func (m *Model) State() *state.State {
	return m.pager
}

// Focus returns the focused panel.
func (m *Model) Focus() Focus {
	return m.focus
}

// activeEditor returns the input box of the current mode.
func (m *Model) activeEditor() *ui.Editor {
	return m.editors[m.pager.Mode]
}

// applyMode points the header, editors and preview at the current mode.
func (m *Model) applyMode() {
	mode := m.pager.Mode
	m.header.SetMode(mode)
	for md, e := range m.editors {
		if md != mode || m.focus != FocusEditor {
			e.Blur()
		}
	}
	if mode == state.ModeURL {
		m.preview.SetMessage("Enter a URL and press ctrl+g")
	} else {
		m.preview.SetMessage("Paste configs and press ctrl+g")
	}
}

// updateSizes recalculates panel sizes from the terminal size.
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	for _, e := range m.editors {
		e.SetSize(ctx.EditorWidth, ctx.ContentHeight)
	}
	m.preview.SetSize(ctx.PreviewWidth, ctx.ContentHeight)
	m.sizeOverlay()
}

// syncInput copies the active editor's text into the state and persists it.
func (m *Model) syncInput() {
	m.pager.SetActiveInput(m.activeEditor().Value())
	m.persist()
}

// persist writes the main record. Failures are logged; the UI keeps going.
func (m *Model) persist() {
	if err := state.Save(m.store, m.pager.Record()); err != nil {
		logger.Error("App: failed to save state: %v", err)
	}
}

// cancelRender abandons the preview render in flight, if any.
func (m *Model) cancelRender() {
	if m.renderCancel != nil {
		m.renderCancel()
		m.renderCancel = nil
	}
}
