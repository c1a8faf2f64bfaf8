package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"lightcycle/internal/game"
)

// Environment variables consulted when the matching flag is left empty.
const (
	EnvDatabaseURL  = "LIGHTCYCLE_DATABASE_URL"
	EnvSpectateAddr = "LIGHTCYCLE_SPECTATE_ADDR"
)

// Config represents the command-line parameters shared by every host.
type Config struct {
	Scale        int
	TPS          int
	View         string
	StepInterval int
	ScoresPath   string
	PostgresDSN  string
	SpectateAddr string
	Audio        bool
	Volume       float64
	Debug        bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:        4,
		TPS:          60,
		View:         "2d",
		StepInterval: game.DefaultConfig().StepInterval,
		ScoresPath:   "lightcycle-scores.json",
		Audio:        true,
		Volume:       0.5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.View, "view", c.View, "initial view: 2d or 3d")
	fs.IntVar(&c.StepInterval, "step", c.StepInterval, "frames between board steps")
	fs.StringVar(&c.ScoresPath, "scores", c.ScoresPath, "JSON file for match results (empty disables)")
	fs.StringVar(&c.PostgresDSN, "postgres", c.PostgresDSN, "PostgreSQL DSN for match results; overrides -scores")
	fs.StringVar(&c.SpectateAddr, "spectate", c.SpectateAddr, "listen address for the spectator stream (empty disables)")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play sound cues")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound cue volume between 0 and 1")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "verbose logging")
}

// ApplyEnv fills settings left empty on the command line from the
// environment. A nil getenv uses os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if c.PostgresDSN == "" {
		c.PostgresDSN = getenv(EnvDatabaseURL)
	}
	if c.SpectateAddr == "" {
		c.SpectateAddr = getenv(EnvSpectateAddr)
	}
}

var errInvalidConfig = errors.New("invalid configuration")

// Validate rejects settings no host can run with.
func (c *Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", errInvalidConfig, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", errInvalidConfig, c.TPS)
	case c.StepInterval <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", errInvalidConfig, c.StepInterval)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume must be within [0,1], got %g", errInvalidConfig, c.Volume)
	}
	if _, ok := game.ParseView(c.View); !ok {
		return fmt.Errorf("%w: unknown view %q", errInvalidConfig, c.View)
	}
	return nil
}

// MatchConfig converts the settings into a game configuration.
func (c *Config) MatchConfig() game.Config {
	v, _ := game.ParseView(c.View)
	return game.Config{View: v, StepInterval: c.StepInterval}
}
