package state

import "github.com/zhubert/qrpack/internal/storage"

// State is the live generator state shared by the TUI and the headless
// commands.
type State struct {
	Mode   Mode
	Input  string
	URL    string
	Chunks []string
	Index  int
}

// New returns an empty state in config mode.
func New() *State {
	return &State{Mode: ModeConfig}
}

// FromRecord rebuilds a State from a persisted record. An unknown mode falls
// back to config and an out-of-range index to 0.
func FromRecord(rec Record) *State {
	s := &State{
		Mode:   rec.ActiveTab,
		Input:  rec.InputValue,
		URL:    rec.URLValue,
		Chunks: rec.QRChunks,
		Index:  rec.CurrentIndex,
	}
	if !s.Mode.Valid() {
		s.Mode = ModeConfig
	}
	s.normalize()
	return s
}

// Record returns the persisted form of s.
func (s *State) Record() Record {
	return Record{
		InputValue:   s.Input,
		URLValue:     s.URL,
		ActiveTab:    s.Mode,
		QRChunks:     s.Chunks,
		CurrentIndex: s.Index,
	}
}

func (s *State) normalize() {
	if s.Index < 0 || s.Index >= len(s.Chunks) {
		s.Index = 0
	}
}

// Empty reports whether there is nothing to display.
func (s *State) Empty() bool {
	return len(s.Chunks) == 0
}

// Total returns the number of pages.
func (s *State) Total() int {
	return len(s.Chunks)
}

// Current returns the chunk on the current page.
func (s *State) Current() (string, bool) {
	if s.Empty() {
		return "", false
	}
	s.normalize()
	return s.Chunks[s.Index], true
}

// Next moves to the following page, wrapping to the first. No-op when empty.
func (s *State) Next() {
	n := len(s.Chunks)
	if n == 0 {
		return
	}
	s.Index = (s.Index + 1) % n
}

// Prev moves to the preceding page, wrapping to the last. No-op when empty.
func (s *State) Prev() {
	n := len(s.Chunks)
	if n == 0 {
		return
	}
	s.Index = ((s.Index-1)%n + n) % n
}

// Replace swaps in a freshly generated chunk set and rewinds to page one.
func (s *State) Replace(chunks []string) {
	s.Chunks = chunks
	s.Index = 0
}

// ActiveInput returns the text of the current mode's input box.
func (s *State) ActiveInput() string {
	if s.Mode == ModeURL {
		return s.URL
	}
	return s.Input
}

// SetActiveInput replaces the text of the current mode's input box.
func (s *State) SetActiveInput(text string) {
	if s.Mode == ModeURL {
		s.URL = text
		return
	}
	s.Input = text
}

// Clear empties the current mode's input and the chunk set.
func (s *State) Clear() {
	s.SetActiveInput("")
	s.Chunks = nil
	s.Index = 0
}

// Snapshot captures the current mode's input, chunks and index.
func (s *State) Snapshot() TabSnapshot {
	snap := TabSnapshot{
		QRChunks:     append([]string(nil), s.Chunks...),
		CurrentIndex: s.Index,
	}
	if s.Mode == ModeURL {
		snap.URLValue = s.URL
	} else {
		snap.InputValue = s.Input
	}
	return snap
}

// SwitchMode stores the outgoing mode's snapshot, activates to and restores
// its snapshot, or starts it with an empty chunk set when none is stored.
// Switching to the active mode does nothing.
func (s *State) SwitchMode(store storage.Store, to Mode) error {
	if to == s.Mode || !to.Valid() {
		return nil
	}
	err := SaveTab(store, s.Mode, s.Snapshot())

	s.Mode = to
	s.Chunks = nil
	s.Index = 0
	if snap, ok := LoadTab(store, to); ok {
		s.Chunks = snap.QRChunks
		s.Index = snap.CurrentIndex
		s.normalize()
	}
	return err
}
