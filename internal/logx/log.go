// Package logx is the process-wide structured logger.
//
// The terminal belongs to the UI while the program runs, so log output goes
// to a file. Until InitLog is called every event is discarded.
package logx

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var globalLog = zerolog.Nop()

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a level name to a zerolog level. Unknown names are an error.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, errors.Errorf("unknown log level %q", level)
}

// InitLog opens path for appending and routes all events at or above level to
// it. An empty path discards output. The returned closer releases the file.
func InitLog(level, path string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if path == "" {
		globalLog = zerolog.Nop()
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	SetOutput(f, lvl)
	return f, nil
}

// SetOutput routes events at or above lvl to w.
func SetOutput(w io.Writer, lvl zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	globalLog = zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func Debug() *zerolog.Event { return globalLog.Debug() }
func Info() *zerolog.Event  { return globalLog.Info() }
func Warn() *zerolog.Event  { return globalLog.Warn() }
func Error() *zerolog.Event { return globalLog.Error() }
