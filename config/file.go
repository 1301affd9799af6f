package config

import (
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileConfig mirrors the TOML layout, pointers mark keys that were present
type fileConfig struct {
	ScreenWidth  *int    `toml:"screen_width"`
	ScreenHeight *int    `toml:"screen_height"`
	WinScore     *int    `toml:"win_score"`
	FrameRate    *int    `toml:"frame_rate"`
	Seed         *int64  `toml:"seed"`
	Welcome      *string `toml:"welcome"`
	Result       *string `toml:"result"`
	KeyHold      *string `toml:"key_hold"`

	Audio struct {
		Enabled *bool    `toml:"enabled"`
		Volume  *float64 `toml:"volume"`
	} `toml:"audio"`
}

// WithFile returns c overlaid with the keys present in the TOML file at path.
// Unknown keys are rejected so typos do not pass silently.
func (c Config) WithFile(path string) (Config, error) {
	var f fileConfig
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return c, errors.Wrapf(err, "decode config file %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return c, errors.Wrapf(ErrInvalid, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return c.overlay(f)
}

// Decode is WithFile for an in-memory document
func (c Config) Decode(doc string) (Config, error) {
	var f fileConfig
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return c, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, errors.Wrapf(ErrInvalid, "unknown key %s", undecoded[0].String())
	}
	return c.overlay(f)
}

func (c Config) overlay(f fileConfig) (Config, error) {
	if f.ScreenWidth != nil {
		c.ScreenWidth = *f.ScreenWidth
	}
	if f.ScreenHeight != nil {
		c.ScreenHeight = *f.ScreenHeight
	}
	if f.WinScore != nil {
		c.WinScore = *f.WinScore
	}
	if f.FrameRate != nil {
		c.FrameRate = *f.FrameRate
	}
	if f.Seed != nil {
		c.Seed = *f.Seed
	}
	if f.Audio.Enabled != nil {
		c.Audio.Enabled = *f.Audio.Enabled
	}
	if f.Audio.Volume != nil {
		c.Audio.Volume = *f.Audio.Volume
	}

	durations := []struct {
		key string
		src *string
		dst *time.Duration
	}{
		{"welcome", f.Welcome, &c.WelcomeDuration},
		{"result", f.Result, &c.ResultDuration},
		{"key_hold", f.KeyHold, &c.KeyHold},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		v, err := time.ParseDuration(*d.src)
		if err != nil {
			return c, errors.Wrapf(ErrInvalid, "%s: %v", d.key, err)
		}
		*d.dst = v
	}

	return c, nil
}
