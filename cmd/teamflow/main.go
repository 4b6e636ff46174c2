package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/teamflowhq/teamflow/internal/cli"
	"github.com/teamflowhq/teamflow/internal/config"
	"github.com/teamflowhq/teamflow/internal/persist"
	"github.com/teamflowhq/teamflow/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config path: env var or default ~/.config/teamflow/config.yaml.
	cfgPath := os.Getenv("TEAMFLOW_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	slot, err := cfg.OpenSlot()
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer slot.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	adapter := persist.NewAdapter(slot, cfg.Storage.Key, logger)

	app := &cli.App{
		Store: store.Open(adapter),
		Geo:   cfg.Geometry(),
	}

	return cli.NewRootCmd(app).Execute()
}
