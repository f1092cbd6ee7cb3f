package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"prizewheel/app"
	"prizewheel/config"
	"prizewheel/roster"
	"prizewheel/sound"
	"prizewheel/ui"
	"prizewheel/wheel"
)

const (
	logDir      = "logs"
	logFileName = "prizewheel.log"
)

var (
	configFlag       = flag.String("config", "config.yaml", "Path to YAML config file")
	participantsFlag = flag.String("participants", "", "Participants file, one name per line (overrides config)")
	tickFlag         = flag.Int("tick", 0, "Frame interval in milliseconds (overrides config)")
	seedFlag         = flag.Int64("seed", 0, "Spin RNG seed, 0 for time-based (overrides config)")
	noSoundFlag      = flag.Bool("no-sound", false, "Disable sound effects")
	debugFlag        = flag.Bool("debug", false, "Write debug logs to logs/prizewheel.log")
)

// setupLogging routes the stdlib logger to a file when debug is on and to
// io.Discard otherwise, keeping stray log output off the raw terminal.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal("Config error: %v", err)
	}
	if *participantsFlag != "" {
		cfg.Participants = *participantsFlag
	}
	if *tickFlag > 0 {
		cfg.TickMs = *tickFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *noSoundFlag {
		cfg.Sound = false
	}

	participants, err := roster.Load(cfg.Participants)
	if err != nil {
		fatal("Roster error: %v", err)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	engine := wheel.NewEngine(participants, rng)

	sounds, err := sound.NewPlayer(cfg.Sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without sound)\n", err)
	}
	defer sounds.Close()

	var winnerLog *roster.WinnerLog
	if cfg.WinnerLog != "" {
		winnerLog, err = roster.OpenWinnerLog(cfg.WinnerLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Winner log unavailable: %v (continuing without it)\n", err)
		}
	}
	defer winnerLog.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fatal("Failed to initialize terminal: %v", err)
	}

	// Restore the terminal on both normal exit and panic; on panic the stack
	// is printed after the reset so it stays visible.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPRIZEWHEEL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	a := app.New(engine, sounds, winnerLog)
	log.Printf("starting with %d participants, tick %v", engine.Count(), cfg.TickInterval())

	run(screen, a, ui.DefaultTheme(), cfg.TickInterval())
}

// run drives the application: one goroutine forwards terminal events, the
// select below serializes them with the animation ticker so exactly one
// thread of control ever mutates the app.
func run(screen tcell.Screen, a *app.App, th ui.Theme, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ui.Draw(screen, a, th)
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Tick()
		}
		ui.Draw(screen, a, th)
	}
}
