// Package config loads the anchor CLI configuration from the environment.
//
// An optional .env file is read first with godotenv; variables already set in
// the process environment take precedence over the file. The environment is
// then parsed into Config with caarlos0/env.
package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidReferenceTime is returned when ANCHOR_NOW is not RFC 3339.
	ErrInvalidReferenceTime = errors.New("invalid reference time")
)

// Log formats understood by LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	LogLevel  string `env:"ANCHOR_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ANCHOR_LOG_FORMAT" envDefault:"text"`

	// Now, when set, replaces the current time as the comparison date of
	// after and before checks that carry no param.
	Now string `env:"ANCHOR_NOW"`
}

// Load reads the given env files, or ./.env if none are given, and parses
// the environment into a Config.
//
// A missing ./.env is not an error. A missing file that was asked for by
// name is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field that has a restricted set of values.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Join(ErrInvalidLogFormat, errors.New(c.LogFormat))
	}
	if _, _, err := c.ReferenceTime(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.Join(ErrInvalidLogLevel, err)
	}
	return level, nil
}

// ReferenceTime returns the parsed Now value and whether one was set.
func (c Config) ReferenceTime() (time.Time, bool, error) {
	if c.Now == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, c.Now)
	if err != nil {
		return time.Time{}, false, errors.Join(ErrInvalidReferenceTime, err)
	}
	return t, true, nil
}
