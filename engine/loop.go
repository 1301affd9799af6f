// Package engine drives a match in real time: it polls a frontend for input,
// steps the match once per frame, forwards events to audio and renders.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/game"
)

// Frontend is a display plus keyboard the loop drives
type Frontend interface {
	// Poll drains pending input and returns the held state of both players
	Poll(now time.Time) (left, right game.Input, quit bool)
	// Welcome shows the intro message
	Welcome(text string)
	// Render draws one frame of the match
	Render(m *game.Match)
}

// SoundPlayer receives the events of every stepped frame
type SoundPlayer interface {
	PlayEvents(ev game.Event)
}

// Loop is the fixed-rate game loop. Its methods must be called from one goroutine.
type Loop struct {
	id       string
	cfg      config.Config
	match    *game.Match
	frontend Frontend
	sound    SoundPlayer
	clock    TimeProvider

	welcomeUntil time.Time
	finishedAt   time.Time
}

// NewLoop wires a match to its frontend. sound may be nil.
func NewLoop(match *game.Match, frontend Frontend, sound SoundPlayer, clock TimeProvider) *Loop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Loop{
		id:       uuid.NewString(),
		cfg:      match.Config(),
		match:    match,
		frontend: frontend,
		sound:    sound,
		clock:    clock,
	}
}

// ID identifies this session in the log
func (l *Loop) ID() string { return l.id }

// Run shows the welcome screen and then runs frames until the player quits,
// the result has been shown long enough, or ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.FrameInterval())
	defer ticker.Stop()

	l.begin()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[%s] interrupted at frame %d", l.id, l.match.Frame())
			return ctx.Err()
		case <-ticker.C:
			if !l.Frame() {
				return nil
			}
		}
	}
}

func (l *Loop) begin() {
	log.Printf("[%s] session start: field %dx%d, first to %d",
		l.id, l.cfg.ScreenWidth, l.cfg.ScreenHeight, l.cfg.WinScore)
	l.welcomeUntil = l.clock.Now().Add(l.cfg.WelcomeDuration)
	l.frontend.Welcome(constants.WelcomeMessage)
}

// Frame runs one tick and reports whether the loop should continue.
// Input is always polled so quit works on the welcome and result screens.
func (l *Loop) Frame() bool {
	now := l.clock.Now()

	left, right, quit := l.frontend.Poll(now)
	if quit {
		log.Printf("[%s] quit at frame %d (%d-%d)", l.id, l.match.Frame(), l.match.LeftScore(), l.match.RightScore())
		return false
	}

	if now.Before(l.welcomeUntil) {
		return true
	}

	if !l.match.Finished() {
		l.match.Step(left, right)
		l.report(now)
	} else if now.Sub(l.finishedAt) >= l.cfg.ResultDuration {
		return false
	}

	l.frontend.Render(l.match)
	return true
}

// report logs and sounds the events of the step just taken
func (l *Loop) report(now time.Time) {
	ev := l.match.Events()
	if ev == 0 {
		return
	}

	if l.sound != nil {
		l.sound.PlayEvents(ev)
	}

	if ev.Has(game.EventScoreLeft) || ev.Has(game.EventScoreRight) {
		log.Printf("[%s] score %d-%d at frame %d", l.id, l.match.LeftScore(), l.match.RightScore(), l.match.Frame())
	}
	if ev.Has(game.EventPowerUp) {
		vx, _ := l.match.BallVelocity()
		log.Printf("[%s] power-up collected, vx=%.2f", l.id, vx)
	}
	if ev.Has(game.EventMatchOver) {
		l.finishedAt = now
		winner, _ := l.match.Winner()
		log.Printf("[%s] match over: %s wins %d-%d", l.id, winner, l.match.LeftScore(), l.match.RightScore())
	}
}
