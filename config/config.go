// Package config holds the immutable match and runtime settings.
//
// Values are merged from defaults, an optional TOML file, an optional .env file,
// SKATTERS_* environment variables and finally command-line flags. The merged
// Config is validated once and then passed by value; nothing mutates it afterwards.
package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/skatters/constants"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Minimum playfield, the power-up spawn range must stay non-empty
const (
	MinScreenWidth  = 2 * constants.PowerUpInset
	MinScreenHeight = 2 * constants.PowerUpInset
)

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool
	Volume  float64 // 0.0 - 1.0
}

// Config is the full set of settings for one run
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	WinScore     int
	FrameRate    int

	// Seed for the match random source, 0 means seed from the clock
	Seed int64

	WelcomeDuration time.Duration
	ResultDuration  time.Duration
	KeyHold         time.Duration

	Audio AudioConfig
}

// Default returns the stock settings
func Default() Config {
	return Config{
		ScreenWidth:     constants.ScreenWidth,
		ScreenHeight:    constants.ScreenHeight,
		WinScore:        constants.WinScore,
		FrameRate:       constants.FrameRate,
		WelcomeDuration: constants.WelcomeDuration,
		ResultDuration:  constants.ResultDuration,
		KeyHold:         constants.KeyHoldDuration,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultVolume,
		},
	}
}

// Validate rejects settings the physics cannot run with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth < MinScreenWidth:
		return errors.Wrapf(ErrInvalid, "screen width %d below minimum %d", c.ScreenWidth, MinScreenWidth)
	case c.ScreenHeight < MinScreenHeight:
		return errors.Wrapf(ErrInvalid, "screen height %d below minimum %d", c.ScreenHeight, MinScreenHeight)
	case c.WinScore <= 0:
		return errors.Wrapf(ErrInvalid, "win score must be positive, got %d", c.WinScore)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalid, "frame rate must be positive, got %d", c.FrameRate)
	case c.WelcomeDuration < 0:
		return errors.Wrapf(ErrInvalid, "welcome duration is negative: %v", c.WelcomeDuration)
	case c.ResultDuration < 0:
		return errors.Wrapf(ErrInvalid, "result duration is negative: %v", c.ResultDuration)
	case c.KeyHold <= 0:
		return errors.Wrapf(ErrInvalid, "key hold must be positive, got %v", c.KeyHold)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Wrapf(ErrInvalid, "volume %.2f outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

// FrameInterval is the duration of one frame at FrameRate
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Load merges the TOML file at path (optional), the .env file in the working
// directory (optional) and SKATTERS_* variables over the defaults.
// The result is not validated; flags may still override it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var err error
		if cfg, err = cfg.WithFile(path); err != nil {
			return cfg, err
		}
	}

	if err := LoadDotEnv(DotEnvFile); err != nil {
		return cfg, err
	}

	return cfg.WithEnv(lookupEnv)
}
