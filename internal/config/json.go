package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"pastepad/internal/jsonutil"

	"github.com/pkg/errors"
)

// duration accepts "3s"-style strings or integer nanoseconds.
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("invalid duration %s", b)
	}
	*d = duration(n)
	return nil
}

// jsonConfig is the on-disk shape. Pointers distinguish "absent" from "zero".
type jsonConfig struct {
	APIBaseURL     *string   `json:"api_base_url"`
	Location       *string   `json:"location"`
	PasteID        *string   `json:"paste_id"`
	LogLevel       *string   `json:"log_level"`
	LogFile        *string   `json:"log_file"`
	RequestTimeout *duration `json:"request_timeout"`
	ToastTTL       *duration `json:"toast_ttl"`
	TraceEndpoint  *string   `json:"trace_endpoint"`
}

// jsonConfigPath extracts the -c / -config value from args, ignoring every
// other flag.
func jsonConfigPath(args []string) string {
	var path string
	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "")
	fs.StringVar(&path, "c", "", "")
	fs.SetOutput(io.Discard)
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--c", "--config"}))
	return path
}

// parseJSON overlays cfg with the fields present in the file at path.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	var jc jsonConfig
	if err := jsonutil.UnmarshalWithContext(data, &jc, "parse config file "+path); err != nil {
		return err
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.Location, jc.Location)
	setString(&cfg.PasteID, jc.PasteID)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.TraceEndpoint, jc.TraceEndpoint)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeout)
	}
	if jc.ToastTTL != nil {
		cfg.ToastTTL = time.Duration(*jc.ToastTTL)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// FilterArgs returns only the allowed flags (and their values) from args.
// Both "-f value" and "-f=value" forms are recognized.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}
