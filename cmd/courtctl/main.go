// Command courtctl quản lý collection courts cho operator.
//
// Usage:
//
//	courtctl summary [--json]
//	courtctl stats
//	courtctl purge
//	courtctl seed [--dry-run]
//	courtctl reset
//	courtctl seed --catalog ./cities.yaml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/court-finder/app/bootstrap"
	"github.com/court-finder/app/config"
	"github.com/court-finder/app/services"
	"github.com/court-finder/helpers/logging"
	"github.com/court-finder/internal/catalog"
)

var catalogPath string

func main() {
	root := &cobra.Command{
		Use:          "courtctl",
		Short:        "Basketball court catalog admin CLI",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: embedded catalog)")

	root.AddCommand(summaryCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(purgeCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(resetCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func summaryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print catalog coverage without touching the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := bootstrap.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			return printSummary(cmd, catalog.Summarize(cat, catalog.Generate(cat)), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count stored courts and compare with the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *services.CourtAdminService) error {
				stats, err := svc.Stats(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored courts: %d (catalog: %d)\n", stats.StoredCourts, stats.Catalog.Total)
				return nil
			})
		},
	}
}

func purgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every court from the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *services.CourtAdminService) error {
				result, err := svc.Purge(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d courts from database\n", result.DeletedCount)
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the catalog courts into the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				cat, err := bootstrap.LoadCatalog(catalogPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d courts would be inserted\n", cat.TotalCourts())
				return printSummary(cmd, catalog.Summarize(cat, catalog.Generate(cat)), false)
			}
			return withService(func(ctx context.Context, svc *services.CourtAdminService) error {
				result, err := svc.Seed(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized %d basketball courts nationwide!\n", result.Inserted)
				return printSummary(cmd, result.Summary, false)
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate and summarize only")
	return cmd
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Purge the collection, then seed it from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *services.CourtAdminService) error {
				result, err := svc.Reset(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Deleted %d courts from database\n", result.Purge.DeletedCount)
				fmt.Fprintf(out, "Successfully initialized %d basketball courts nationwide!\n", result.Seed.Inserted)
				return printSummary(cmd, result.Seed.Summary, false)
			})
		},
	}
}

func printSummary(cmd *cobra.Command, summary *catalog.Summary, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return summary.Write(out)
}

// withService load config, mở kết nối, chạy fn rồi đóng kết nối kể cả khi lỗi
func withService(fn func(ctx context.Context, svc *services.CourtAdminService) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cat, err := bootstrap.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	rt, err := bootstrap.Open(ctx, cfg, cat, logger)
	if err != nil {
		logger.Error("Failed to connect", zap.Error(err))
		return fmt.Errorf("connect to database: %w", err)
	}
	defer rt.Close()

	return fn(ctx, rt.Service)
}
