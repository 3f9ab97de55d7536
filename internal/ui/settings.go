package ui

import (
	"fmt"
	"strconv"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/zhubert/qrpack/internal/config"
)

// Settings holds the values edited by the settings form. Numbers are kept
// as text while editing.
type Settings struct {
	Theme          string
	AssetsDir      string
	OutputDir      string
	MaxChunkLength string
	CanvasWidth    string
	CanvasHeight   string
	QRSize         string
	Toasts         bool
	Desktop        bool
}

// SettingsFrom copies cfg into form values.
func SettingsFrom(cfg *config.Config) *Settings {
	return &Settings{
		Theme:          cfg.Theme,
		AssetsDir:      cfg.AssetsDir,
		OutputDir:      cfg.OutputDir,
		MaxChunkLength: strconv.Itoa(cfg.MaxChunkLength),
		CanvasWidth:    strconv.Itoa(cfg.CanvasWidth),
		CanvasHeight:   strconv.Itoa(cfg.CanvasHeight),
		QRSize:         strconv.Itoa(cfg.QRSize),
		Toasts:         cfg.NotificationsEnabled,
		Desktop:        cfg.DesktopNotifications,
	}
}

// Apply writes the form values into cfg and validates the result. cfg is
// left untouched on error.
func (s *Settings) Apply(cfg *config.Config) error {
	next := *cfg

	next.Theme = s.Theme
	next.AssetsDir = strings.TrimSpace(s.AssetsDir)
	next.OutputDir = strings.TrimSpace(s.OutputDir)
	next.NotificationsEnabled = s.Toasts
	next.DesktopNotifications = s.Desktop

	ints := []struct {
		name string
		text string
		dst  *int
	}{
		{"max chunk length", s.MaxChunkLength, &next.MaxChunkLength},
		{"canvas width", s.CanvasWidth, &next.CanvasWidth},
		{"canvas height", s.CanvasHeight, &next.CanvasHeight},
		{"QR size", s.QRSize, &next.QRSize},
	}
	for _, f := range ints {
		n, err := parsePositive(f.text)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*cfg = next
	return nil
}

func parsePositive(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func validatePositive(text string) error {
	_, err := parsePositive(text)
	return err
}

func validateNotEmpty(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// NewSettingsForm builds the settings wizard over s.
func NewSettingsForm(s *Settings) *huh.Form {
	names := ThemeNames()
	themeOptions := make([]huh.Option[string], len(names))
	for i, name := range names {
		themeOptions[i] = huh.NewOption(GetTheme(name).Name, string(name))
	}

	files := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.Theme),
		huh.NewInput().
			Title("Assets directory").
			Description("Holds images/background.png, images/urlbackground.png and images/numbers/").
			Validate(validateNotEmpty).
			Value(&s.AssetsDir),
		huh.NewInput().
			Title("Output directory").
			Description("PNG and ZIP downloads are written here").
			Validate(validateNotEmpty).
			Value(&s.OutputDir),
	).Title("Files")

	canvas := huh.NewGroup(
		huh.NewInput().
			Title("Max chunk length").
			Description(fmt.Sprintf("Characters per QR code, at most %d", config.MaxChunkLength)).
			Validate(validatePositive).
			Value(&s.MaxChunkLength),
		huh.NewInput().
			Title("Canvas width").
			Validate(validatePositive).
			Value(&s.CanvasWidth),
		huh.NewInput().
			Title("Canvas height").
			Validate(validatePositive).
			Value(&s.CanvasHeight),
		huh.NewInput().
			Title("QR size").
			Description("Edge of the QR symbol in pixels").
			Validate(validatePositive).
			Value(&s.QRSize),
	).Title("Canvas")

	notify := huh.NewGroup(
		huh.NewConfirm().
			Title("Show notifications").
			Value(&s.Toasts),
		huh.NewConfirm().
			Title("Mirror notifications to the desktop").
			Value(&s.Desktop),
	).Title("Notifications")

	return huh.NewForm(files, canvas, notify).
		WithTheme(FormTheme())
}
