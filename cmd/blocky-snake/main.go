package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/config"
	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
	"github.com/lixenwraith/blocky-snake/render"
	"golang.org/x/term"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Getenv))
}

// realMain returns the process exit code so deferred cleanup runs before os.Exit
func realMain(args []string, getenv func(string) string) int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	logFile, err := setupLogging(logDir, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Debug logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("Stdout is not a terminal, refusing to start")
		fmt.Fprintln(os.Stderr, "blocky-snake needs an interactive terminal on stdout")
		return 1
	}

	if err := run(cfg); err != nil {
		log.Printf("Run failed: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	screen.HideCursor()
	screen.SetStyle(render.StyleDefault)
	screen.Clear()

	width, height := screen.Size()
	if err := cfg.FitsScreen(width, height); err != nil {
		return err
	}

	game := newSession(cfg, screen, engine.NewMonotonicTimeProvider())

	// tcell polls blocking, the pump feeds the loop and closes events once quit is closed
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		screen.ChannelEvents(events, quit)
	})

	state := game.Run(events)
	log.Printf("Loop exited in state %s, outcome %s", state, game.Outcome())
	return nil
}
