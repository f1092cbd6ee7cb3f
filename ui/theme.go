package ui

import "github.com/gdamore/tcell/v2"

// Theme defines semantic styles for the views.
type Theme struct {
	Base        tcell.Style
	Title       tcell.Style
	TabActive   tcell.Style
	TabInactive tcell.Style
	Cursor      tcell.Style
	Winner      tcell.Style
	Banner      tcell.Style
	Gauge       tcell.Style
	Status      tcell.Style
	Hint        tcell.Style
}

// DefaultTheme provides reasonable defaults for dark terminals.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Base:        base,
		Title:       base.Foreground(tcell.ColorYellow).Bold(true),
		TabActive:   base.Bold(true).Reverse(true),
		TabInactive: base.Dim(true),
		Cursor:      base.Reverse(true),
		Winner:      base.Foreground(tcell.ColorGreen),
		Banner:      base.Foreground(tcell.ColorGreen).Bold(true),
		Gauge:       base.Foreground(tcell.ColorAqua),
		Status:      base.Dim(true),
		Hint:        base.Foreground(tcell.ColorTeal),
	}
}
