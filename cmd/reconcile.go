package cmd

import (
	"context"
	"fmt"
	"time"

	"nursery-monitor/core/config"
	"nursery-monitor/core/database"
	"nursery-monitor/core/feed"
	"nursery-monitor/core/logger"
	"nursery-monitor/core/reconcile"
	"nursery-monitor/core/state"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	forceRefresh bool
)

// reconcileCmd runs one reconciliation cycle and prints the report.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation cycle against the inventory feed",
	Long: `Fetches the inventory feed (honoring the cache unless --refresh is given),
normalizes and aggregates it, and reports stock figures, the latest activity,
and whether the activity is new since the last run.

Examples:
  # Report using the cached payload when fresh
  nursery-monitor reconcile

  # Bypass the cache and fetch live data
  nursery-monitor reconcile --refresh`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&forceRefresh, "refresh", false, "Invalidate the cache and fetch live data")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting inventory reconciliation")

	// State store: database-backed when available. Without it the seen
	// fingerprint does not persist, so every run reports activity as new.
	var store state.Store
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed, state is in-memory only", zap.Error(err))
		store = state.NewMemoryStore()
	} else {
		gormStore := state.NewGormStore(db)
		if err := gormStore.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate state table: %w", err)
		}
		store = gormStore
	}

	// Feed client
	feedClient, err := feed.NewClient(cfg.Feed)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %w", err)
	}

	sheet := cfg.Feed.Sheet
	engine := reconcile.NewService(
		func(ctx context.Context) ([]reconcile.RawRecord, error) {
			return feedClient.FetchRecords(ctx, sheet)
		},
		reconcile.NewFeedCache(store),
		reconcile.NewDetector(store, "seen:feed:"+sheet),
		l,
		reconcile.Options{
			FeedKey:      "cache:feed:" + sheet,
			CacheTTL:     time.Duration(cfg.Feed.CacheTTLMinutes) * time.Minute,
			WatchSpecies: cfg.Feed.WatchSpecies,
		},
	)

	var result *reconcile.Result
	if forceRefresh {
		result, err = engine.Refresh(ctx)
	} else {
		result, err = engine.RunCycle(ctx)
	}
	if err != nil {
		return fmt.Errorf("reconciliation cycle failed: %w", err)
	}

	printCycleReport(l, result)
	return nil
}

// printCycleReport prints a formatted reconciliation report using logger.
func printCycleReport(l *zap.Logger, result *reconcile.Result) {
	l.Info("Reconciliation report",
		zap.Float64("total_received", result.Stock.TotalReceived),
		zap.Float64("total_shipped", result.Stock.TotalShipped),
		zap.Float64("total_lost", result.Stock.TotalLost),
		zap.Float64("net_stock", result.Stock.NetStock),
		zap.Int("species_count", result.Stock.SpeciesCount),
		zap.Int("discarded_rows", result.Discarded),
		zap.Bool("stale", result.Stale),
		zap.Time("fetched_at", result.FetchedAt),
	)

	if result.Latest != nil {
		l.Info("Latest activity",
			zap.Time("date", result.Latest.Record.Date),
			zap.String("species", result.Latest.Record.Species),
			zap.Float64("received", result.Latest.Record.Received),
			zap.Float64("shipped", result.Latest.Record.Shipped),
			zap.Float64("lost", result.Latest.Record.Lost),
			zap.Bool("new", result.Notify != nil),
		)
	} else {
		l.Info("No activity records in feed")
	}

	if result.Watched != nil && result.Watched.HasData {
		l.Info("Watched species",
			zap.String("species", result.Watched.Species),
			zap.Float64("net_stock", result.Watched.Stock.NetStock),
			zap.Time("last_activity", result.Watched.LastActivity),
		)
	}
}
