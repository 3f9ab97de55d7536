package notification

import (
	"sync"

	"github.com/gen2brain/beeep"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/zhubert/qrpack/internal/logger"
)

// AppName is the title of desktop notifications.
const AppName = "qrpack"

var (
	notifier = beeep.Notify

	iconOnce sync.Once
	iconPNG  []byte
)

// SetNotifier replaces the desktop notification function. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep.Notify.
func ResetNotifier() {
	notifier = beeep.Notify
}

// icon is a small QR code of the app name, encoded once.
func icon() []byte {
	iconOnce.Do(func() {
		data, err := qrcode.Encode(AppName, qrcode.Medium, 128)
		if err != nil {
			logger.Warn("Notification: failed to build icon: %v", err)
			return
		}
		iconPNG = data
	})
	return iconPNG
}

// Send shows a desktop notification.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q message=%q", title, message)
	err := notifier(title, message, icon())
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// Mirror sends a toast to the desktop, prefixed with its icon.
func Mirror(kind Kind, message string) error {
	return Send(AppName, kind.Icon()+" "+message)
}
