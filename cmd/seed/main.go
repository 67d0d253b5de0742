// Command seed loads a YAML tour catalog into the database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kirinyoku/travelease/internal/app"
	"github.com/kirinyoku/travelease/internal/config"
	"github.com/kirinyoku/travelease/internal/service/admin"
)

func main() {
	file := flag.String("file", "configs/tours.yaml", "path to the tour catalog")
	prune := flag.Bool("prune", false, "delete tours that are not in the catalog")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger, *file, *prune); err != nil {
		logger.Error("seed failed", "file", *file, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, file string, prune bool) error {
	tours, err := admin.LoadCatalog(file)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	infra, err := app.NewInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	res, err := infra.Services.Admin.SeedCatalog(ctx, tours, prune)
	if err != nil {
		return err
	}

	logger.Info("catalog seeded", "file", file, "tours", len(tours), "written", res.Written, "pruned", res.Pruned)

	return nil
}
