package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"pastepad/internal/clipboard"
	"pastepad/internal/config"
	"pastepad/internal/logx"
	"pastepad/internal/pasteapi"
	"pastepad/internal/telemetry"
	"pastepad/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	closer, err := logx.InitLog(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	shutdown, err := telemetry.Setup(context.Background(), cfg.TraceEndpoint, telemetry.DefaultServiceName)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logx.Warn().Err(err).Msg("flush traces")
		}
	}()

	loc, err := cfg.InitialLocation()
	if err != nil {
		return err
	}
	api, err := pasteapi.New(cfg.APIBaseURL, pasteapi.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return err
	}
	logx.Info().
		Str("api", api.BaseURL()).
		Str("location", loc.String()).
		Dur("timeout", cfg.RequestTimeout).
		Msg("starting pastepad")

	m := ui.NewAppModel(ui.Options{
		API:       api,
		Clipboard: clipboard.NewSystem(os.Stderr),
		Location:  loc,
		ToastTTL:  cfg.ToastTTL,
	})
	p := tea.NewProgram(m.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run UI")
	}

	// The alt screen is gone; leave the final location on stdout so it can
	// be reused to reopen the same paste.
	fmt.Println(m.Location.String())
	return nil
}
