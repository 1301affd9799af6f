package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/game"
)

// SoundManager turns match events into short sound cues.
// Every method is safe to call when audio is disabled or the device failed to open.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	initialized bool

	// play queues streamers on the output device
	play func(s ...beep.Streamer)
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:  cfg,
		play: speaker.Play,
	}
}

// Initialize opens the speaker. It is a no-op when audio is disabled or already open.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether cues will reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues one sound effect
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if s := GetSoundEffect(soundType, sm.cfg.Volume); s != nil {
		sm.play(s)
	}
}

// PlayEvents plays the cues for everything that happened in one frame.
// A finished match plays only the win jingle; the scoring cue would clash with it.
func (sm *SoundManager) PlayEvents(ev game.Event) {
	if ev == 0 {
		return
	}

	if ev.Has(game.EventMatchOver) {
		sm.Play(SoundWin)
		return
	}
	if ev.Has(game.EventScoreLeft) || ev.Has(game.EventScoreRight) {
		sm.Play(SoundScore)
	}
	if ev.Has(game.EventPowerUp) {
		sm.Play(SoundPowerUp)
	}
	if ev.Has(game.EventPaddleHit) {
		sm.Play(SoundPaddle)
	}
	if ev.Has(game.EventWallBounce) {
		sm.Play(SoundWall)
	}
}
