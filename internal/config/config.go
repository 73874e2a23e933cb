// Package config assembles pastepad's runtime settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. a .env file in the working directory (optional)
//  3. a JSON file named by -c / -config (optional)
//  4. process environment (PASTEPAD_*, OTEL_EXPORTER_OTLP_ENDPOINT)
//  5. command-line flags and the positional location argument
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"pastepad/internal/location"
	"pastepad/internal/logx"
	"pastepad/internal/pasteapi"

	"github.com/pkg/errors"
)

// Config holds runtime settings for the pastepad client.
type Config struct {
	// APIBaseURL is the backend root, e.g. http://localhost:3000.
	APIBaseURL string
	// Location is the initial page URL; its pasteId selects edit mode.
	Location string
	// PasteID, when set, overrides the pasteId in Location.
	PasteID string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFile receives structured logs. Empty discards them.
	LogFile string
	// RequestTimeout bounds each backend call. Zero means no timeout.
	RequestTimeout time.Duration
	// ToastTTL is how long notifications stay on screen. Zero keeps them.
	ToastTTL time.Duration
	// TraceEndpoint is an OTLP/HTTP host:port. Empty disables tracing.
	TraceEndpoint string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = pasteapi.DefaultBaseURL
	c.Location = "/"
	c.PasteID = ""
	c.LogLevel = "info"
	c.LogFile = defaultLogFile()
	c.RequestTimeout = 0
	c.ToastTTL = 3 * time.Second
	c.TraceEndpoint = ""
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pastepad", "pastepad.log")
}

// LoadConfig builds a Config from defaults, .env, JSON, environment and args
// (usually os.Args[1:]). flag.ErrHelp is returned unwrapped when -h is given.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	dotenv, err := readDotEnv(DotEnvFile)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, mapLookup(dotenv)); err != nil {
		return nil, errors.Wrap(err, DotEnvFile)
	}
	if err := parseJSON(cfg, jsonConfigPath(args)); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, errors.Wrap(err, "environment")
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return errors.Wrap(err, "api base URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("api base URL %q must be an absolute http(s) URL", c.APIBaseURL)
	}
	if _, err := location.Parse(c.Location); err != nil {
		return err
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	if c.ToastTTL < 0 {
		return errors.New("toast TTL must not be negative")
	}
	return nil
}

// InitialLocation returns the start-up location with PasteID applied.
func (c *Config) InitialLocation() (location.Location, error) {
	loc, err := location.Parse(c.Location)
	if err != nil {
		return location.Location{}, err
	}
	if c.PasteID != "" {
		loc = loc.WithPasteID(c.PasteID)
	}
	return loc, nil
}
