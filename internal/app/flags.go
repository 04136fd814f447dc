package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Backend string
	Scale   int
	TPS     int
	PollHz  int
	Seed    int64
	Debug   bool
	LogFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Backend: "auto", Scale: 1, TPS: 5, PollHz: 120}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "display backend (auto, window, term)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window size multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game ticks per second")
	fs.IntVar(&c.PollHz, "poll", c.PollHz, "terminal input polls per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 picks one from the clock)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show heading and frame counter")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append diagnostics to this file")
}
