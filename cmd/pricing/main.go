package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/coursework/internal/config"
	"github.com/mmynk/coursework/internal/console"
	"github.com/mmynk/coursework/internal/metrics"
	"github.com/mmynk/coursework/internal/pricing"
	"github.com/mmynk/coursework/pkg/logging"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pricing", flag.ContinueOnError)
	configPath := fs.String("config", "coursework.yml", "path to the YAML config file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				slog.Error("Metrics server stopped", "error", err)
			}
		}()
	}

	prompter, closePrompter, err := console.Open(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer closePrompter()

	return pricing.NewSession(prompter, console.NewPrinter(os.Stdout), m).Run(ctx)
}
