package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/skatters/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle  SoundType = iota // Ball hits a paddle
	SoundWall                     // Ball bounces off top or bottom
	SoundScore                    // Point scored
	SoundPowerUp                  // Power-up collected
	SoundWin                      // Match over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"paddle", "wall", "score", "powerup", "win"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

const sampleRate = beep.SampleRate(constants.AudioSampleRate)
