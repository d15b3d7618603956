package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	fyyur "github.com/rubpy/fyyur-client"
)

//////////////////////////////////////////////////

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	EscapeVenueID  bool
	RedirectPath   string
	LogLevel       slog.Level

	// Ask for a keypress before deleting.
	Confirm bool
}

func (c *Config) Settings() fyyur.Settings {
	settings := fyyur.DefaultSettings
	settings.RequestTimeout = c.RequestTimeout
	settings.EscapeVenueID = c.EscapeVenueID
	settings.RedirectPath = c.RedirectPath

	return settings
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("FYYUR_BASE_URL is required")
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid FYYUR_REQUEST_TIMEOUT: %s", c.RequestTimeout)
	}

	if !strings.HasPrefix(c.RedirectPath, "/") {
		return fmt.Errorf("invalid FYYUR_REDIRECT_PATH: %q", c.RedirectPath)
	}

	return nil
}

// LoadConfig reads FYYUR_* settings from the optional env file at path,
// overridden by environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("FYYUR_BASE_URL", "http://localhost:5000")
	v.SetDefault("FYYUR_REQUEST_TIMEOUT", fyyur.DefaultSettings.RequestTimeout.String())
	v.SetDefault("FYYUR_ESCAPE_VENUE_ID", fyyur.DefaultSettings.EscapeVenueID)
	v.SetDefault("FYYUR_REDIRECT_PATH", fyyur.DefaultSettings.RedirectPath)
	v.SetDefault("FYYUR_LOG_LEVEL", "info")
	v.SetDefault("FYYUR_CONFIRM", true)
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	cfg.BaseURL = v.GetString("FYYUR_BASE_URL")
	cfg.RequestTimeout = v.GetDuration("FYYUR_REQUEST_TIMEOUT")
	cfg.EscapeVenueID = v.GetBool("FYYUR_ESCAPE_VENUE_ID")
	cfg.RedirectPath = v.GetString("FYYUR_REDIRECT_PATH")
	cfg.Confirm = v.GetBool("FYYUR_CONFIRM")

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("FYYUR_LOG_LEVEL"))); err != nil {
		return fmt.Errorf("FYYUR_LOG_LEVEL: %w", err)
	}

	return nil
}
