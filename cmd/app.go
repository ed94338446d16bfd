package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/armelyara/TraficDay/internal/components"
	"github.com/armelyara/TraficDay/internal/config"
)

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := components.SetupLogger(cfg.Env)
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY is empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return comps.HttpServer.Run(gctx)
	})

	g.Go(func() error {
		comps.Service.Dispatcher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		comps.Service.Reaper.Run(gctx)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("service exited with error", "err", err)
		comps.ShutdownAll()
		return err
	}

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}
