// Package config loads billsplit settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/mmynk/billsplit/pkg/logging"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config holds the settings shared by the split session and its front ends.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Currency is shown when a scanned bill does not name one.
	Currency string `env:"SPLIT_CURRENCY" envDefault:"$"`

	// Palette is the legend color cycle, as #RRGGBB values.
	Palette []string `env:"SPLIT_PALETTE" envSeparator:"," envDefault:"#FF6B6B,#4ECDC4,#45B7D1,#FFA07A,#98D8C8"`

	// Locale is a BCP 47 tag used to format amounts.
	Locale string `env:"SPLIT_LOCALE" envDefault:"en"`
}

// Load reads a .env file if one is present, then parses the environment.
func Load() (*Config, error) {
	// A missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	for i, c := range cfg.Palette {
		cfg.Palette[i] = strings.TrimSpace(c)
	}
	return &cfg, nil
}

// Validate returns every problem with the configuration joined together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if strings.TrimSpace(c.Currency) == "" {
		errs = append(errs, errors.New("SPLIT_CURRENCY: must not be empty"))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("SPLIT_PALETTE: needs at least one color"))
	}
	for _, color := range c.Palette {
		if !hexColor.MatchString(color) {
			errs = append(errs, fmt.Errorf("SPLIT_PALETTE: invalid color %q: must be #RRGGBB", color))
		}
	}
	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("SPLIT_LOCALE: invalid tag %q: %w", c.Locale, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// Language returns the configured locale, falling back to English.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
