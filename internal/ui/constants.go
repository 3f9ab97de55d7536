// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// EditorWidthRatio is the denominator for editor width (1/3 of total width)
	EditorWidthRatio = 3

	// MinEditorWidth keeps the editor usable on narrow terminals
	MinEditorWidth = 30

	// CounterHeight is the line under the editor showing character and config counts
	CounterHeight = 1

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

// Toast column dimensions
const (
	// ToastWidth is the width of the toast column, borders included
	ToastWidth = 38

	// ToastHeight is the number of rows a toast occupies:
	// top border, message, countdown bar, bottom border
	ToastHeight = 4
)
