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
		fmt.Fprintf(os.Stderr, "Error initializing courts: %v\n", err)
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

	fmt.Println("Generating nationwide basketball courts database...")

	cat, err := bootstrap.LoadCatalog("")
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d courts\n", cat.TotalCourts())

	ctx := context.Background()
	rt, err := bootstrap.Open(ctx, cfg, cat, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	fmt.Println("Inserting into MongoDB...")
	result, err := rt.Service.Seed(ctx)
	if err != nil {
		logger.Error("Seed failed", zap.Error(err))
		return err
	}

	fmt.Printf("Successfully initialized %d basketball courts nationwide!\n", result.Inserted)
	fmt.Println()
	return result.Summary.Write(os.Stdout)
}
