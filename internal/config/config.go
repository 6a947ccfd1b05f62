// Package config holds the application settings and their command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"creaturecapture/internal/pokeapi"
)

// Default values
const (
	DefaultScreenWidth  = 360
	DefaultScreenHeight = 640
	DefaultStartID      = 1
	DefaultLanguage     = "en"
	DefaultLogLevel     = "info"
	DefaultTimeout      = 15 * time.Second
)

// Config is the application configuration
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Logical screen size. The height also fixes the capture rise target.
	ScreenWidth  int
	ScreenHeight int

	StartID  int
	Language string
	LogLevel string
}

// Default returns the configuration used when no flags are given
func Default() Config {
	var c Config
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.BaseURL == "" {
		c.BaseURL = pokeapi.DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = DefaultScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = DefaultScreenHeight
	}
	if c.StartID <= 0 {
		c.StartID = DefaultStartID
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Parse reads flags from args (without the program name) on top of the defaults
func Parse(args []string, output io.Writer) (Config, error) {
	c := Default()

	fs := flag.NewFlagSet("creaturecapture", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "API root URL")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "HTTP request timeout")
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "logical screen width")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "logical screen height")
	fs.IntVar(&c.StartID, "start", c.StartID, "first creature identifier")
	fs.StringVar(&c.Language, "lang", c.Language, "UI language (en, ru)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values a user can get wrong
func (c Config) Validate() error {
	var errs []error
	if c.StartID < 1 {
		errs = append(errs, fmt.Errorf("start identifier must be positive, got %d", c.StartID))
	}
	if c.ScreenWidth < 1 || c.ScreenHeight < 1 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("base URL must be http or https, got %q", c.BaseURL))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the slog level named by LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
