package engine

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/game"
	"github.com/lixenwraith/skatters/input"
	"github.com/lixenwraith/skatters/render"
)

// TerminalFrontend plays the match in a tcell screen
type TerminalFrontend struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyState

	events   chan tcell.Event
	done     chan struct{}
	stopOnce sync.Once
	onCrash  CrashHandler
}

// NewTerminalFrontend wraps an initialised screen
func NewTerminalFrontend(screen tcell.Screen, cfg config.Config, onCrash CrashHandler) *TerminalFrontend {
	return &TerminalFrontend{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight),
		keys:     input.NewKeyState(cfg.KeyHold),
		events:   make(chan tcell.Event, constants.EventQueueSize),
		done:     make(chan struct{}),
		onCrash:  onCrash,
	}
}

// Start begins reading terminal events in the background
func (f *TerminalFrontend) Start() {
	Go(f.onCrash, f.pollEvents)
}

// Stop ends event delivery. The poll goroutine exits once the screen is finalised.
func (f *TerminalFrontend) Stop() {
	f.stopOnce.Do(func() { close(f.done) })
}

func (f *TerminalFrontend) pollEvents() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

// Poll applies queued events without blocking
func (f *TerminalFrontend) Poll(now time.Time) (left, right game.Input, quit bool) {
drain:
	for {
		select {
		case ev := <-f.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				f.screen.Sync()
			}
			f.keys.HandleEvent(ev, now)
		default:
			break drain
		}
	}

	left, right = f.keys.Inputs(now)
	return left, right, f.keys.QuitRequested()
}

func (f *TerminalFrontend) Welcome(text string) {
	f.renderer.RenderMessage(text)
}

func (f *TerminalFrontend) Render(m *game.Match) {
	f.renderer.RenderFrame(m)
}
