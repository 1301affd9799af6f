package config

import (
	"flag"
)

// Flags holds the command-line overrides shared by every frontend.
// Only flags given explicitly override the merged file and environment settings.
type Flags struct {
	ConfigPath string
	Seed       int64
	WinScore   int
	Mute       bool
	Debug      bool

	fs *flag.FlagSet
}

// RegisterFlags defines the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML settings file")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.IntVar(&f.WinScore, "win", 0, "points needed to win")
	fs.BoolVar(&f.Mute, "mute", false, "disable sound")
	fs.BoolVar(&f.Debug, "debug", false, "write a debug log to logs/")
	return f
}

// Apply overlays the explicitly set flags onto c
func (f *Flags) Apply(c Config) Config {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			c.Seed = f.Seed
		case "win":
			c.WinScore = f.WinScore
		case "mute":
			c.Audio.Enabled = !f.Mute
		}
	})
	return c
}

// Resolve loads every configuration layer, applies the flags and validates the result
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	cfg = f.Apply(cfg)
	return cfg, cfg.Validate()
}
