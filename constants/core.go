package constants

import "time"

// Game Loop Timing
const (
	// FrameRate is the fixed simulation and rendering cadence in frames per second
	FrameRate = 60

	// FrameUpdateInterval is the frame interval at FrameRate (~16.6ms)
	FrameUpdateInterval = time.Second / FrameRate

	// WelcomeDuration is how long the welcome message shows before play starts
	WelcomeDuration = 3 * time.Second

	// ResultDuration is how long the winner message stays up after the match ends
	ResultDuration = 3 * time.Second
)

// Input Timing
const (
	// KeyHoldDuration is how long a terminal key press counts as held.
	// Terminals report presses and auto-repeats, never releases.
	// It must exceed the terminal's initial auto-repeat delay (typically 250-600ms)
	// or a held key stalls between the first press and the first repeat.
	KeyHoldDuration = 550 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
