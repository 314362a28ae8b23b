package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/fission-codes/go-tour/errors"
	"github.com/fission-codes/go-tour/util"
	golog "github.com/ipfs/go-log/v2"
)

// Subsystem is the go-log logger name shared by the tour packages.
const Subsystem = "go-tour"

// Config holds the settings of the tour driver.
type Config struct {
	LogLevel  string   `env:"TOUR_LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"TOUR_LOG_FORMAT" envDefault:"plaintext"`
	Seeds     []uint8  `env:"TOUR_SEEDS" envDefault:"0,3,5,9,200"`
	Keys      []string `env:"TOUR_KEYS"`
	Diagram   bool     `env:"TOUR_DIAGRAM" envDefault:"false"`
}

var formats = map[string]golog.LogFormat{
	"plaintext": golog.PlaintextOutput,
	"color":     golog.ColorizedOutput,
	"json":      golog.JSONOutput,
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown log levels and formats.
func (c Config) Validate() error {
	if _, ok := formats[c.LogFormat]; !ok {
		return fmt.Errorf("%w: unknown log format %q", errors.ErrInvalidConfig, c.LogFormat)
	}
	if _, err := golog.LevelFromString(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", errors.ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}

// Logging translates the configuration into go-log settings writing to stdout.
// The tour subsystem never drops below info, so counter disposal lines stay
// on the console whatever level is configured.
func (c Config) Logging() golog.Config {
	level, err := golog.LevelFromString(c.LogLevel)
	if err != nil {
		level = golog.LevelInfo
	}
	return golog.Config{
		Format: formats[c.LogFormat],
		Level:  level,
		SubsystemLevels: map[string]golog.LogLevel{
			Subsystem: util.Min(level, golog.LevelInfo),
		},
		Stdout: true,
	}
}
