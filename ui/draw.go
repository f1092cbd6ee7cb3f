// Package ui renders the application state to a tcell screen. It reads
// snapshots once per frame and writes nothing back.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"prizewheel/app"
	"prizewheel/wheel"
)

const tabSeparator = " │ "

// Draw renders one full frame.
func Draw(s tcell.Screen, a *app.App, th Theme) {
	s.Clear()
	w, h := s.Size()
	if w < 1 || h < 3 {
		s.Show()
		return
	}

	drawTabBar(s, a, th, w)

	body := h - 2 // tab bar on top, status bar at the bottom
	switch a.Tabs.Active {
	case app.TabHome:
		drawHome(s, a, th, w, body)
	case app.TabParticipants:
		drawParticipants(s, a, th, w, body)
	}

	drawStatusBar(s, a, th, w, h-1)
	s.Show()
}

// drawTabBar renders the view titles across row 0.
func drawTabBar(s tcell.Screen, a *app.App, th Theme, w int) {
	x := 1
	for i, title := range a.Tabs.Titles {
		style := th.TabInactive
		if i == a.Tabs.Active {
			style = th.TabActive
		}
		x = drawText(s, x, 0, w, style, " "+title+" ")
		if i < len(a.Tabs.Titles)-1 {
			x = drawText(s, x, 0, w, th.TabInactive, tabSeparator)
		}
	}
}

// drawHome renders the wheel strip with the winner banner and spin gauge.
func drawHome(s tcell.Screen, a *app.App, th Theme, w, h int) {
	drawText(s, 2, 2, w, th.Title, "PRIZE WHEEL")

	participants := a.Engine.Participants()
	cursor := a.Engine.SelectedIndex()

	stripTop := 4
	stripH := h - stripTop - 3
	if stripH < 1 {
		stripH = 1
	}
	offset := scrollOffset(cursor, stripH, len(participants))

	for row := 0; row < stripH; row++ {
		idx := offset + row
		if idx >= len(participants) {
			break
		}
		drawEntry(s, 2, stripTop+row, w, th, participants[idx], idx == cursor)
	}

	infoY := stripTop + stripH + 1
	if a.Engine.IsSpinning() {
		drawText(s, 2, infoY, w, th.Gauge, fmt.Sprintf("Spinning...  speed %5.2f", a.Engine.Speed()))
	} else if rec, ok := a.Engine.SpinWinner(); ok {
		drawText(s, 2, infoY, w, th.Banner, fmt.Sprintf("★ Round %d winner: %s ★", rec.Round, rec.Participant.Name))
	} else {
		drawText(s, 2, infoY, w, th.Hint, "Press Enter to spin")
	}
}

// drawParticipants renders the roster with winner marks and history count.
func drawParticipants(s tcell.Screen, a *app.App, th Theme, w, h int) {
	participants := a.Engine.Participants()
	cursor := a.Engine.SelectedIndex()
	winners := a.Engine.Winners()

	header := fmt.Sprintf("Participants: %d   Rounds won: %d", len(participants), len(winners))
	drawText(s, 2, 2, w, th.Title, header)

	listTop := 4
	listH := h - listTop
	if listH < 1 {
		listH = 1
	}
	offset := scrollOffset(cursor, listH, len(participants))

	for row := 0; row < listH; row++ {
		idx := offset + row
		if idx >= len(participants) {
			break
		}
		drawEntry(s, 2, listTop+row, w, th, participants[idx], idx == cursor)
	}
}

// drawEntry renders one participant row with its winner mark.
func drawEntry(s tcell.Screen, x, y, w int, th Theme, p wheel.Participant, selected bool) {
	marker := "  "
	style := th.Base
	if selected {
		marker = "▶ "
		style = th.Cursor
	}

	check := "   "
	checkStyle := style
	if p.IsWinner {
		check = "✓  "
		if !selected {
			checkStyle = th.Winner
		}
	}

	x = drawText(s, x, y, w, style, marker)
	x = drawText(s, x, y, w, checkStyle, check)
	drawText(s, x, y, w, style, p.Name)
}

// drawStatusBar renders key hints on the given row.
func drawStatusBar(s tcell.Screen, a *app.App, th Theme, w, y int) {
	hints := "Enter spin · r reset · j/k move · d remove · Tab view · q quit"
	if a.Engine.IsSpinning() {
		hints = "r reset · q quit"
	}
	drawText(s, 1, y, w, th.Status, hints)
}

// drawText writes text at (x, y) clipped to width w, returning the next x.
func drawText(s tcell.Screen, x, y, w int, style tcell.Style, text string) int {
	for _, r := range text {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// scrollOffset centers cursor in a window of height rows over total entries,
// clamped so the window never runs past either end. A cursor of -1 pins the
// window to the top.
func scrollOffset(cursor, height, total int) int {
	if cursor < 0 || total <= height {
		return 0
	}
	offset := cursor - height/2
	if offset < 0 {
		return 0
	}
	if max := total - height; offset > max {
		return max
	}
	return offset
}
