package app

import "time"

// Focus represents which panel is focused
type Focus int

const (
	FocusEditor Focus = iota
	FocusPreview
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusEditor:
		return "Editor"
	case FocusPreview:
		return "Preview"
	default:
		return "Unknown"
	}
}

// renderDoneMsg carries a finished preview render. Results whose token no
// longer matches the model's are stale and dropped.
type renderDoneMsg struct {
	token uint64
	qr    string
	err   error
}

// copyDoneMsg reports a clipboard image write.
type copyDoneMsg struct {
	sizeKB int
	err    error
}

// savedMsg reports a single PNG download.
type savedMsg struct {
	path string
	err  error
}

// zipDoneMsg reports the end of a ZIP export.
type zipDoneMsg struct {
	path  string
	pages int
	err   error
}

// pasteMsg carries clipboard text read for the paste action.
type pasteMsg struct {
	text string
	err  error
}

// toastFrameMsg drives toast countdown bars.
type toastFrameMsg struct {
	time time.Time
}

// toastRemoveMsg removes a hidden toast once its exit delay passes.
type toastRemoveMsg struct {
	id string
}
