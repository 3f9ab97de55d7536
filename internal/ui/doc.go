// Package ui provides the user interface components for the qrpack TUI.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: title, Config | URL tabs                    │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                        ┌───────┐  │
//	│   Editor        │      Preview           │ toast │  │
//	│   (1/3 width)   │      (QR + "1 of 3")   └───────┘  │
//	│   counters      │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer: status and key bindings                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: singleton holding the layout arithmetic.
//
// Header: gradient title plus the mode tabs. TabAt maps a click column to
// the tab under it.
//
// Footer: key bindings for the current mode and focus, with an optional
// status such as "Creating ZIP...".
//
// Editor: a bubbles textarea that sanitizes its text on every change and
// shows character and config counts.
//
// Preview: the half-block rendering of the current page and its counter.
//
// Toasts: RenderToasts draws the notification stack; Overlay places it over
// the right edge of the content area and ToastAt maps mouse cells back to
// a toast for hover pause and resume.
//
// HelpView and LogView: full-width panels drawn in place of the editor and
// preview. HelpView is a filterable list of shortcuts; LogView tails the
// debug log in a viewport.
//
// Settings: the huh form behind "qrpack init", styled by FormTheme.
//
// # Styles
//
// Colors come from the active Theme (see theme.go). The QR preview keeps
// fixed white-on-black colors under every theme.
package ui
