package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no stray .env is read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.APIBaseURL)
	assert.Equal(t, "/", c.Location)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 3*time.Second, c.ToastTTL)
	assert.Zero(t, c.RequestTimeout)
	assert.Empty(t, c.TraceEndpoint)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, "/", cfg.Location)
}

func TestLoadConfig_Flags(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig([]string{
		"-api", "https://paste.example.com",
		"-paste", "42",
		"-log-level", "debug",
		"-log-file", "",
		"-timeout", "5s",
		"-toast-ttl", "0",
		"-trace-endpoint", "localhost:4318",
		"http://localhost:5173/?theme=dark",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://paste.example.com", cfg.APIBaseURL)
	assert.Equal(t, "42", cfg.PasteID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.ToastTTL)
	assert.Equal(t, "localhost:4318", cfg.TraceEndpoint)
	assert.Equal(t, "http://localhost:5173/?theme=dark", cfg.Location)

	loc, err := cfg.InitialLocation()
	require.NoError(t, err)
	assert.Equal(t, "42", loc.PasteID())
	assert.Equal(t, "http://localhost:5173/?pasteId=42&theme=dark", loc.String())
}

func TestLoadConfig_PositionalLocationSelectsPaste(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig([]string{"/?pasteId=7"})
	require.NoError(t, err)

	loc, err := cfg.InitialLocation()
	require.NoError(t, err)
	assert.Equal(t, "7", loc.PasteID())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, ".env"), "PASTEPAD_API_URL=http://dotenv:1\nPASTEPAD_LOG_LEVEL=warn\nPASTEPAD_TOAST_TTL=9s\nPASTEPAD_PASTE_ID=from-dotenv\n")
	jsonPath := filepath.Join(dir, "pastepad.json")
	writeFile(t, jsonPath, `{"api_base_url":"http://json:2","log_level":"error","request_timeout":"2s"}`)
	t.Setenv(EnvAPIURL, "http://env:3")

	cfg, err := LoadConfig([]string{"-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, "http://env:3", cfg.APIBaseURL, "environment beats JSON")
	assert.Equal(t, "error", cfg.LogLevel, "JSON beats .env")
	assert.Equal(t, 9*time.Second, cfg.ToastTTL, ".env beats defaults")
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "from-dotenv", cfg.PasteID)

	cfg, err = LoadConfig([]string{"-config=" + jsonPath, "-api", "http://flag:4"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:4", cfg.APIBaseURL, "flags beat everything")
}

func TestLoadConfig_JSONDurationAsNanoseconds(t *testing.T) {
	dir := isolate(t)
	jsonPath := filepath.Join(dir, "c.json")
	writeFile(t, jsonPath, `{"toast_ttl": 1500000000}`)

	cfg, err := LoadConfig([]string{"-c", jsonPath})
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.ToastTTL)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		json string
	}{
		{name: "relative api url", args: []string{"-api", "localhost:3000"}},
		{name: "bad log level", args: []string{"-log-level", "chatty"}},
		{name: "negative timeout", args: []string{"-timeout", "-1s"}},
		{name: "two locations", args: []string{"/a", "/b"}},
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "bad env duration", env: map[string]string{EnvTimeout: "soon"}},
		{name: "bad json", json: `{"api_base_url":`},
		{name: "bad json duration", json: `{"request_timeout": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			args := tt.args
			if tt.json != "" {
				p := filepath.Join(dir, "c.json")
				writeFile(t, p, tt.json)
				args = append([]string{"-c", p}, args...)
			}
			_, err := LoadConfig(args)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingJSONFile(t *testing.T) {
	isolate(t)
	_, err := LoadConfig([]string{"-c", "does-not-exist.json"})
	assert.Error(t, err)
}

func TestLoadConfig_Help(t *testing.T) {
	isolate(t)
	_, err := LoadConfig([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-api", "http://x", "-c", "conf.json", "/?pasteId=1"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-paste=3"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-c", "-api", "http://x"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "stops at terminator",
			args:    []string{"--", "-c", "conf.json"},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
