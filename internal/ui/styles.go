package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/qrpack/internal/notification"
)

// Color palette, refreshed by SetTheme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#9CA3AF") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess     = lipgloss.Color("#10B981") // Green
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red
)

// QR preview colors stay fixed across themes so the symbol scans.
var (
	ColorQRLight = lipgloss.Color("#FFFFFF")
	ColorQRDark  = lipgloss.Color("#000000")
)

// Header styles
var (
	HeaderTitleStyle     lipgloss.Style
	HeaderTabStyle       lipgloss.Style
	HeaderTabActiveStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle       lipgloss.Style
	FooterKeyStyle    lipgloss.Style
	FooterDescStyle   lipgloss.Style
	FooterStatusStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Editor and preview styles
var (
	CounterStyle       lipgloss.Style
	PageCounterStyle   lipgloss.Style
	PlaceholderStyle   lipgloss.Style
	QRStyle            lipgloss.Style
	StatusLoadingStyle lipgloss.Style
)

// Toast styles
var (
	ToastStyle        lipgloss.Style
	ToastMessageStyle lipgloss.Style
	ToastHidingStyle  lipgloss.Style
)

func init() {
	buildStyles(currentTheme)
}

// buildStyles derives every style from the color variables.
func buildStyles(t Theme) {
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	HeaderTabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	HeaderTabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(lipgloss.Color(t.GetBgSelected())).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStatusStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	CounterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	PageCounterStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	QRStyle = lipgloss.NewStyle().
		Foreground(ColorQRLight).
		Background(ColorQRDark)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	ToastMessageStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	ToastHidingStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Faint(true)
}

// KindColor returns the accent color for a notification kind.
func KindColor(k notification.Kind) color.Color {
	switch k {
	case notification.Success:
		return ColorSuccess
	case notification.Warning:
		return ColorWarning
	case notification.Error:
		return ColorError
	default:
		return ColorInfo
	}
}
