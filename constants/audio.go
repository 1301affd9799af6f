package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume in [0, 1]
	DefaultVolume = 0.6
)

// Paddle Hit Sound
const (
	PaddleSoundFreq     = 660.0
	PaddleSoundDuration = 60 * time.Millisecond
)

// Wall Bounce Sound
const (
	WallSoundFreq     = 330.0
	WallSoundDuration = 40 * time.Millisecond
)

// Score Sound
const (
	ScoreSoundFreq     = 160.0
	ScoreSoundDuration = 250 * time.Millisecond
)

// Power-up Sound (rising sweep)
const (
	PowerUpSoundFromFreq = 400.0
	PowerUpSoundToFreq   = 1200.0
	PowerUpSoundDuration = 180 * time.Millisecond
)

// Win Jingle
const (
	WinNoteDuration = 140 * time.Millisecond
)

// WinNotes is the arpeggio played when a player wins (C5 E5 G5 C6)
var WinNotes = []float64{523.25, 659.25, 783.99, 1046.50}
