// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "g", "n", "q" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations, one per editor action
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c" quit
	CtrlG = (tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}).String() // "ctrl+g" generate
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y" copy
	CtrlS = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String() // "ctrl+s" save PNG
	CtrlZ = (tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl}).String() // "ctrl+z" save ZIP
	CtrlX = (tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}).String() // "ctrl+x" clear
	CtrlV = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String() // "ctrl+v" paste
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t" switch mode
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l" debug log
)

// Function keys
var (
	F1 = tea.KeyPressMsg{Code: tea.KeyF1}.String() // "f1" help
)
