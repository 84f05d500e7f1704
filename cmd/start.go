package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"trade-ledger/core/config"
	"trade-ledger/core/ledger"
	"trade-ledger/core/loader"
	"trade-ledger/core/logger"
	"trade-ledger/core/metrics"
	"trade-ledger/core/middleware/auth"
	"trade-ledger/core/middleware/rayid"

	featcatalog "trade-ledger/feature/catalog"
	"trade-ledger/feature/tradelist"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "trade-ledger/docs/swagger"
)

// @title Trade Ledger API
// @version 1.0
// @description API for managing card trade lists.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the trade ledger server",
	Long:  `Loads the card catalog, starts the HTTP server and registers all features.`,
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

		// 3. Load Catalog
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cat, err := loadCatalog(ctx, cfg, logg)
		if cat == nil {
			logg.Fatal("Failed to configure catalog", zap.Error(err))
		}
		if err != nil {
			logg.Warn("Starting with an empty catalog; use POST /catalog/reload to retry", zap.Error(err))
		}

		// 4. Ledger store and metrics live for the process lifetime
		store := ledger.NewStore(cfg.Ledger.Shards)
		m := metrics.New()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(featcatalog.NewFeature(cat, logg))
		mgr.Register(tradelist.NewFeature(cat.Catalog(), store, m, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		// Public endpoints
		if cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}
		app.Get("/metrics", m.Handler())

		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key is empty; endpoints are unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...", zap.Int("owners", store.Len()))
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
