package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DotEnvFile is the optional dotenv file read from the working directory
const DotEnvFile = ".env"

// Environment variable names
const (
	EnvScreenWidth  = "SKATTERS_SCREEN_WIDTH"
	EnvScreenHeight = "SKATTERS_SCREEN_HEIGHT"
	EnvWinScore     = "SKATTERS_WIN_SCORE"
	EnvFrameRate    = "SKATTERS_FRAME_RATE"
	EnvSeed         = "SKATTERS_SEED"
	EnvWelcome      = "SKATTERS_WELCOME"
	EnvResult       = "SKATTERS_RESULT"
	EnvKeyHold      = "SKATTERS_KEY_HOLD"
	EnvAudioEnabled = "SKATTERS_AUDIO_ENABLED"
	EnvVolume       = "SKATTERS_VOLUME" // 0.0-1.0, same scale as audio.volume
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

var lookupEnv LookupFunc = os.LookupEnv

// LoadDotEnv loads variables from path into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// WithEnv returns c overlaid with the SKATTERS_* variables visible through lookup
func (c Config) WithEnv(lookup LookupFunc) (Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvScreenWidth, &c.ScreenWidth},
		{EnvScreenHeight, &c.ScreenHeight},
		{EnvWinScore, &c.WinScore},
		{EnvFrameRate, &c.FrameRate},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return c, errors.Wrapf(ErrInvalid, "%s=%q is not an integer", e.key, v)
			}
			*e.dst = n
		}
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(ErrInvalid, "%s=%q is not an integer", EnvSeed, v)
		}
		c.Seed = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvWelcome, &c.WelcomeDuration},
		{EnvResult, &c.ResultDuration},
		{EnvKeyHold, &c.KeyHold},
	}
	for _, e := range durations {
		if v, ok := lookup(e.key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return c, errors.Wrapf(ErrInvalid, "%s=%q is not a duration", e.key, v)
			}
			*e.dst = d
		}
	}

	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalid, "%s=%q is not a boolean", EnvAudioEnabled, v)
		}
		c.Audio.Enabled = b
	}

	if v, ok := lookup(EnvVolume); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(ErrInvalid, "%s=%q is not a number", EnvVolume, v)
		}
		c.Audio.Volume = f
	}

	return c, nil
}
