//go:build sdl

// Command skatters-sdl plays Skatters in an SDL window. Build with -tags sdl;
// it needs the SDL2, SDL2_gfx and SDL2_ttf development libraries.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/skatters/audio"
	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/engine"
	"github.com/lixenwraith/skatters/game"
)

func init() {
	// SDL event and render calls must run on the main thread
	runtime.LockOSThread()
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	fontPath := flag.String("font", "arial.ttf", "TTF font for scores and messages")
	flag.Parse()

	// The window leaves stderr free for the debug log
	if flags.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skatters-sdl: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, *fontPath); err != nil {
		fmt.Fprintf(os.Stderr, "skatters-sdl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, fontPath string) error {
	frontend, err := newSDLFrontend(cfg, fontPath)
	if err != nil {
		return errors.Wrap(err, "sdl init")
	}
	defer frontend.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	match, err := game.NewMatch(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(match, frontend, sound, nil)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
