package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmynk/coursework/internal/commands"
	"github.com/mmynk/coursework/internal/config"
	"github.com/mmynk/coursework/internal/console"
	"github.com/mmynk/coursework/internal/metrics"
	"github.com/mmynk/coursework/internal/registry"
	"github.com/mmynk/coursework/internal/storage"
	"github.com/mmynk/coursework/internal/storage/jsonfile"
	"github.com/mmynk/coursework/internal/storage/sqlite"
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
	fs := flag.NewFlagSet("registry", flag.ContinueOnError)
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

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

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

	repo := registry.NewRepository()
	session := commands.NewSession(&commands.Deps{
		Repo:     repo,
		Factory:  registry.NewFactory(registry.NewValidator(repo)),
		Store:    store,
		Prompter: prompter,
		Printer:  console.NewPrinter(os.Stdout),
		Metrics:  m,
	})

	session.Load(ctx)
	err = session.Run(ctx)
	if errors.Is(err, io.EOF) {
		slog.Warn("Input closed, exiting without saving")
		return nil
	}
	return err
}

// openStore picks the storage backend named in the config.
func openStore(cfg config.Config) (storage.UserStore, error) {
	switch cfg.Storage {
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		slog.Info("Storage initialized", "backend", cfg.Storage, "database", cfg.DBPath)
		return store, nil
	default:
		slog.Info("Storage initialized", "backend", cfg.Storage, "file", cfg.UsersFile)
		return jsonfile.New(cfg.UsersFile), nil
	}
}
