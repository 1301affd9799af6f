package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/skatters/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length waveform whose frequency glides
// linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator that slides from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream and ends it after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.totalSamples - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is handled by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a pure sine of the given length, falling back to the local
// oscillator when the frequency is out of range for the generator
func tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), sine)
}

// Sound effect generators

// CreatePaddleSound generates a short square blip for paddle hits
func CreatePaddleSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PaddleSoundDuration
	osc := NewOscillator(constants.PaddleSoundFreq, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, d/2, rate), 0.5)
}

// CreateWallSound generates a soft sine tick for wall bounces
func CreateWallSound(rate beep.SampleRate) beep.Streamer {
	d := constants.WallSoundDuration
	return NewEnvelope(tone(constants.WallSoundFreq, d, rate), d, 2*time.Millisecond, d/2, rate)
}

// CreateScoreSound generates a low tone with its octave for a point scored
func CreateScoreSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ScoreSoundDuration
	fund := NewEnvelope(tone(constants.ScoreSoundFreq, d, rate), d, 5*time.Millisecond, d*3/4, rate)
	over := NewEnvelope(tone(constants.ScoreSoundFreq*2, d, rate), d, 5*time.Millisecond, d/2, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// CreatePowerUpSound generates a rising sweep for power-up collection
func CreatePowerUpSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PowerUpSoundDuration
	sweep := NewSweep(constants.PowerUpSoundFromFreq, constants.PowerUpSoundToFreq, d, WaveSine, rate)
	return NewEnvelope(sweep, d, 5*time.Millisecond, d/3, rate)
}

// CreateWinSound plays the win arpeggio one note after another
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	d := constants.WinNoteDuration
	notes := make([]beep.Streamer, 0, len(constants.WinNotes))
	for _, freq := range constants.WinNotes {
		notes = append(notes, NewEnvelope(tone(freq, d, rate), d, 5*time.Millisecond, d/2, rate))
	}
	return beep.Seq(notes...)
}

// GetSoundEffect returns the sound effect streamer for the given type at master volume
func GetSoundEffect(soundType SoundType, volume float64) beep.Streamer {
	var s beep.Streamer
	switch soundType {
	case SoundPaddle:
		s = CreatePaddleSound(sampleRate)
	case SoundWall:
		s = CreateWallSound(sampleRate)
	case SoundScore:
		s = CreateScoreSound(sampleRate)
	case SoundPowerUp:
		s = CreatePowerUpSound(sampleRate)
	case SoundWin:
		s = CreateWinSound(sampleRate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
