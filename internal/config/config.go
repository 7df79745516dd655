// Package config loads runtime settings from HELPERS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"gamehelpers/internal/logger"
)

// Config holds every tunable of the helper kit and the demo.
type Config struct {
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"console"`
	Development    bool          `env:"DEV"`
	RandomSeed     uint64        `env:"RANDOM_SEED"` // 0 uses the raylib generator
	WaitResolution time.Duration `env:"WAIT_RESOLUTION" envDefault:"1ms"`
	SoundBankPath  string        `env:"SOUND_BANK"`
	BindersPath    string        `env:"BINDERS"`
	WindowWidth    int32         `env:"WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight   int32         `env:"WINDOW_HEIGHT" envDefault:"720"`
}

const prefix = "HELPERS_"

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: prefix})
}

// LoadFrom parses an explicit environment map instead of the process one.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	ErrWaitResolution = errors.New("wait resolution must be positive")
	ErrLogFormat      = errors.New("log format must be json or console")
	ErrWindowSize     = errors.New("window size must be positive")
)

func (c Config) Validate() error {
	if c.WaitResolution <= 0 {
		return fmt.Errorf("%w: %v", ErrWaitResolution, c.WaitResolution)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("%w: %q", ErrLogFormat, c.LogFormat)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindowSize, c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Logger returns the logger section of the config.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:       c.LogLevel,
		Format:      c.LogFormat,
		Development: c.Development,
	}
}
