package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/skatters/audio"
	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/engine"
	"github.com/lixenwraith/skatters/game"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before os.Exit
func realMain(args []string) int {
	fs := flag.NewFlagSet("skatters", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if logFile := setupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := flags.Resolve()
	if err != nil {
		log.Printf("config: %v", err)
		fmt.Fprintf(os.Stderr, "skatters: %v\n", err)
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Print("stdout is not a terminal")
		fmt.Fprintln(os.Stderr, "skatters: stdout is not a terminal")
		return 1
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "skatters: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Restore the terminal before printing, whichever goroutine panicked
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mSKATTERS CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.HideCursor()
	screen.SetTitle(constants.Title)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	match, err := game.NewMatch(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	// Game runs without sound if the device cannot be opened
	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	frontend := engine.NewTerminalFrontend(screen, cfg, crash)
	frontend.Start()
	defer frontend.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(match, frontend, sound, nil)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
