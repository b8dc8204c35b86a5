package main

import (
	"context"
	"fmt"
	"os"

	"github.com/court-finder/app/bootstrap"
	"github.com/court-finder/app/config"
	"github.com/court-finder/helpers/logging"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing courts: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cat, err := bootstrap.LoadCatalog("")
	if err != nil {
		return err
	}

	ctx := context.Background()
	rt, err := bootstrap.Open(ctx, cfg, cat, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	result, err := rt.Service.Purge(ctx)
	if err != nil {
		logger.Error("Purge failed", zap.Error(err))
		return err
	}

	fmt.Printf("Deleted %d courts from database\n", result.DeletedCount)
	return nil
}
