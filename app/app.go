// Package app composes the spin engine, tab state, and side-effect sinks, and
// maps terminal events to engine commands. Rendering reads it, never writes.
package app

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"prizewheel/roster"
	"prizewheel/sound"
	"prizewheel/wheel"
)

// App is the whole mutable state of the tool. One goroutine owns it: the run
// loop serializes ticks and input events through a single select.
type App struct {
	Tabs   Tabs
	Engine *wheel.Engine

	sounds    *sound.Player
	winnerLog *roster.WinnerLog
}

// New wires the application together. sounds and winnerLog may be nil.
func New(engine *wheel.Engine, sounds *sound.Player, winnerLog *roster.WinnerLog) *App {
	return &App{
		Tabs:      NewTabs("Home", "Participants"),
		Engine:    engine,
		sounds:    sounds,
		winnerLog: winnerLog,
	}
}

// Tick advances the spin one frame and fires the side effects the engine
// itself stays free of: the pass-by click, the fanfare, the winner log.
func (a *App) Tick() {
	wasSpinning := a.Engine.IsSpinning()
	before := a.Engine.SelectedIndex()

	a.Engine.Tick()

	if !wasSpinning {
		return
	}
	if a.Engine.SelectedIndex() != before {
		a.sounds.Click()
	}
	if !a.Engine.IsSpinning() {
		if rec, ok := a.Engine.SpinWinner(); ok {
			a.sounds.Fanfare()
			if err := a.winnerLog.Append(rec); err != nil {
				log.Printf("winner log append failed: %v", err)
			}
		}
	}
}

// HandleEvent dispatches one terminal event. Returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.Tabs.Next()
	case tcell.KeyBacktab:
		a.Tabs.Prev()
	case tcell.KeyEnter:
		a.Engine.StartSpin()
	case tcell.KeyDown:
		a.Engine.Advance(1)
	case tcell.KeyUp:
		a.Engine.Retreat()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'l':
		a.Tabs.Next()
	case 'h':
		a.Tabs.Prev()
	case 's', ' ':
		a.Engine.StartSpin()
	case 'r':
		a.Engine.ResetSpin()
	case 'j':
		a.Engine.Advance(1)
	case 'k':
		a.Engine.Retreat()
	case 'd':
		a.Engine.RemoveSelected()
	case 'c':
		a.Engine.ClearSelection()
	}
	return true
}
