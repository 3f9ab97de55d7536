package ui

import (
	"strings"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/qrpack/internal/notification"
)

// toastInnerWidth is the text width inside a toast's border and padding.
const toastInnerWidth = ToastWidth - BorderSize - 2

// RenderToasts stacks toasts top to bottom, newest first. Each toast is
// exactly ToastWidth columns by ToastHeight rows.
func RenderToasts(toasts []notification.Toast) string {
	if len(toasts) == 0 {
		return ""
	}
	views := make([]string, 0, len(toasts))
	for i := range toasts {
		views = append(views, renderToast(&toasts[i]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func renderToast(t *notification.Toast) string {
	accent := KindColor(t.Kind)

	icon := lipgloss.NewStyle().Foreground(accent).Render(t.Kind.Icon())
	msgStyle := ToastMessageStyle
	if t.Hiding {
		msgStyle = ToastHidingStyle
	}
	text := ansi.Truncate(t.Message, toastInnerWidth-2, "…")
	line := icon + " " + msgStyle.Render(text)

	bar := progress.New(
		progress.WithWidth(toastInnerWidth),
		progress.WithoutPercentage(),
		progress.WithColors(accent),
	)

	return ToastStyle.
		BorderForeground(accent).
		Width(ToastWidth).
		Render(line + "\n" + bar.ViewAs(t.Progress()))
}

// ToastAt maps a screen cell to the index of the toast drawn there by
// Overlay, given the screen width and the number of toasts.
func ToastAt(x, y, screenWidth, count int) (int, bool) {
	if x < screenWidth-ToastWidth || x >= screenWidth || y < HeaderHeight {
		return 0, false
	}
	i := (y - HeaderHeight) / ToastHeight
	if i >= count {
		return 0, false
	}
	return i, true
}

// Overlay draws top over the right edge of base starting at row offset,
// keeping the left part of each covered row.
func Overlay(base, top string, width, offset int) string {
	if top == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	for i, tl := range topLines {
		row := offset + i
		if row >= len(baseLines) {
			break
		}
		tw := ansi.StringWidth(tl)
		left := ansi.Truncate(baseLines[row], max(width-tw, 0), "")
		if pad := width - tw - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		baseLines[row] = left + tl
	}
	return strings.Join(baseLines, "\n")
}
