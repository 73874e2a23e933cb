package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// parseFlags overlays cfg with command-line flags and the optional positional
// location argument.
//
//	pastepad [flags] [location]
//
//	-api URL            backend base URL
//	-paste ID           open the paste with this identifier
//	-log-level LEVEL    debug, info, warn or error
//	-log-file PATH      structured log destination ("" discards)
//	-timeout DURATION   per-request timeout (0 disables)
//	-toast-ttl DURATION notification lifetime (0 keeps them)
//	-trace-endpoint H:P OTLP/HTTP trace collector
//	-c, -config PATH    JSON config file
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("pastepad", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var ignoredConfig string
	fs.StringVar(&ignoredConfig, "config", "", "path to a JSON config file")
	fs.StringVar(&ignoredConfig, "c", "", "path to a JSON config file (short)")

	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.PasteID, "paste", cfg.PasteID, "open the paste with this identifier")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, `log file path ("" discards logs)`)
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout (0 disables)")
	fs.DurationVar(&cfg.ToastTTL, "toast-ttl", cfg.ToastTTL, "notification lifetime (0 keeps them on screen)")
	fs.StringVar(&cfg.TraceEndpoint, "trace-endpoint", cfg.TraceEndpoint, "OTLP/HTTP trace collector host:port")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: pastepad [flags] [location]\n\n")
		fmt.Fprintf(out, "pastepad creates, edits and views text pastes on a REST backend.\n")
		fmt.Fprintf(out, "location is the page URL; its pasteId parameter opens that paste,\n")
		fmt.Fprintf(out, "e.g. pastepad '/?pasteId=42'.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return flag.ErrHelp
		}
		return errors.Wrap(err, "parse flags")
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Location = fs.Arg(0)
	default:
		return errors.Errorf("expected at most one location argument, got %d", fs.NArg())
	}
	return nil
}
