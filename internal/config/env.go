package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Environment variable names.
const (
	EnvAPIURL        = "PASTEPAD_API_URL"
	EnvLocation      = "PASTEPAD_LOCATION"
	EnvPasteID       = "PASTEPAD_PASTE_ID"
	EnvLogLevel      = "PASTEPAD_LOG_LEVEL"
	EnvLogFile       = "PASTEPAD_LOG_FILE"
	EnvTimeout       = "PASTEPAD_TIMEOUT"
	EnvToastTTL      = "PASTEPAD_TOAST_TTL"
	EnvTraceEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

type lookupFunc func(string) (string, bool)

func mapLookup(m map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// readDotEnv parses path without touching the process environment.
// A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return m, nil
}

// applyEnv overlays every variable that lookup knows about.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	strs := map[string]*string{
		EnvAPIURL:        &cfg.APIBaseURL,
		EnvLocation:      &cfg.Location,
		EnvPasteID:       &cfg.PasteID,
		EnvLogLevel:      &cfg.LogLevel,
		EnvLogFile:       &cfg.LogFile,
		EnvTraceEndpoint: &cfg.TraceEndpoint,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durs := map[string]*time.Duration{
		EnvTimeout:  &cfg.RequestTimeout,
		EnvToastTTL: &cfg.ToastTTL,
	}
	for key, dst := range durs {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "%s", key)
		}
		*dst = d
	}
	return nil
}
