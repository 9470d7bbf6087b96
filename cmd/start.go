package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nursery-monitor/core/config"
	"nursery-monitor/core/database"
	"nursery-monitor/core/feed"
	"nursery-monitor/core/loader"
	"nursery-monitor/core/logger"
	"nursery-monitor/core/middleware/auth"
	"nursery-monitor/core/middleware/rayid"
	"nursery-monitor/core/reconcile"
	"nursery-monitor/core/state"
	"nursery-monitor/core/storage"

	"nursery-monitor/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "nursery-monitor/docs/swagger"
)

// @title Nursery Monitor API
// @version 1.0
// @description API for monitoring seedling inventory.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the nursery monitor server",
	Long:  `Starts the HTTP server, the background reconciliation poller, and all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Pick the state store: database-backed when available, otherwise
		// in-memory. Without a database, cache and seen-fingerprint state do
		// not survive restarts.
		var store state.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, state is in-memory only", zap.Error(err))
			store = state.NewMemoryStore()
		} else {
			gormStore := state.NewGormStore(db)
			if err := gormStore.Migrate(); err != nil {
				logg.Warn("State table migration failed, state is in-memory only", zap.Error(err))
				store = state.NewMemoryStore()
			} else {
				store = gormStore
				logg.Info("Connected to state database")
			}
		}

		// 4. Initialize Feed Client
		feedClient, err := feed.NewClient(cfg.Feed)
		if err != nil {
			logg.Fatal("Failed to create feed client", zap.Error(err))
		}

		// 5. Optional Snapshot Archive
		var archiver *inventory.Archiver
		if cfg.Storage.Enabled {
			storageClient, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archiver = inventory.NewArchiver(storageClient, cfg.Storage.Bucket, cfg.Feed.Sheet)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := archiver.EnsureBucket(ctx); err != nil {
				logg.Warn("Snapshot archive unavailable", zap.Error(err))
				archiver = nil
			}
			cancel()
		}

		// 6. Assemble the Reconciliation Engine
		sheet := cfg.Feed.Sheet
		engine := reconcile.NewService(
			func(ctx context.Context) ([]reconcile.RawRecord, error) {
				return feedClient.FetchRecords(ctx, sheet)
			},
			reconcile.NewFeedCache(store),
			reconcile.NewDetector(store, "seen:feed:"+sheet),
			logg,
			reconcile.Options{
				FeedKey:      "cache:feed:" + sheet,
				CacheTTL:     time.Duration(cfg.Feed.CacheTTLMinutes) * time.Minute,
				WatchSpecies: cfg.Feed.WatchSpecies,
				Notifier:     inventory.NewLogNotifier(logg),
			},
		)

		pollInterval := time.Duration(cfg.Feed.PollIntervalSeconds) * time.Second
		inventorySvc := inventory.NewService(engine, archiver, logg, pollInterval)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(inventorySvc, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features (starts the background poller)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		inventorySvc.Stop()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
