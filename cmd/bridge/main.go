package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"vera-homekit-bridge/internal/adapters/input/homekit"
	adminhttp "vera-homekit-bridge/internal/adapters/input/http"
	"vera-homekit-bridge/internal/adapters/output/persistence"
	"vera-homekit-bridge/internal/adapters/output/vera"
	"vera-homekit-bridge/internal/domain/model"
	"vera-homekit-bridge/internal/domain/service"
	"vera-homekit-bridge/internal/logging"
)

var version = "dev"

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configure logging: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Bridge failed")
	}
	logger.Info().Msg("Bridge stopped")
}

func run(ctx context.Context, cfg model.Config, logger zerolog.Logger) error {
	logger.Info().
		Str("version", version).
		Str("controller", cfg.Controller.BaseURL()).
		Msg("Starting Vera HomeKit bridge")

	client := vera.NewClient(cfg.Controller, vera.WithLogger(logging.WithComponent(logger, "vera")))

	bridgeService, err := service.NewBridgeService(client, cfg, logging.WithComponent(logger, "bridge"))
	if err != nil {
		return err
	}

	store := persistence.NewJSONStore(cfg.StoragePath)
	hk := homekit.NewServer(bridgeService, store, version, logging.WithComponent(logger, "homekit"))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := hk.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.AdminAddr != "" {
		admin := adminhttp.NewServer(bridgeService, logging.WithComponent(logger, "admin"))
		g.Go(func() error {
			return admin.ListenAndServe(ctx, cfg.AdminAddr)
		})
	}

	return g.Wait()
}
