package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/kabu/internal/api"
	"github.com/wonny/kabu/internal/api/handlers"
	"github.com/wonny/kabu/internal/fundamental"
	"github.com/wonny/kabu/internal/scheduler"
	"github.com/wonny/kabu/internal/scheduler/jobs"
	"github.com/wonny/kabu/internal/store"
	"github.com/wonny/kabu/pkg/database"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server with the daily refresh scheduler.

Endpoints:
  GET  /health                     - Health check
  GET  /api/analyze/{symbol}       - Full analysis for one symbol
  POST /api/analyze                - Batch analysis
  POST /api/rank                   - Composite-score ranking
  GET  /api/risk/{symbol}          - Risk metrics
  POST /api/portfolio              - Portfolio construction
  GET  /api/fundamentals/{symbol}  - Financial statement score

Example:
  go run ./cmd/kabu api
  go run ./cmd/kabu api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	if apiPort != "" {
		app.cfg.Port = apiPort
	}

	log := app.log

	log.WithFields(map[string]interface{}{
		"port": app.cfg.Port,
		"env":  app.cfg.Env,
	}).Info("Initializing API server")

	// Snapshot persistence is optional; without a database the daily
	// refresh job still warms the price cache.
	var snapshotRepo *store.SnapshotRepository
	if app.cfg.Database.Enabled {
		db, err := database.New(app.cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		snapshotRepo = store.NewSnapshotRepository(db.Pool)
		log.Info("Connected to database")
	}

	provider := fundamental.NewSubprocessProvider(app.cfg.Fundamentals, log)
	scorer := fundamental.NewScorer(log)

	analysisHandler := handlers.NewAnalysisHandler(app.analyzer, log)
	portfolioHandler := handlers.NewPortfolioHandler(app.analyzer, log)
	fundamentalHandler := handlers.NewFundamentalHandler(provider, scorer, log)

	router := api.NewRouter(analysisHandler, portfolioHandler, fundamentalHandler, log)
	server := api.New(app.cfg, log, router)

	sched := scheduler.New(log)
	refresh := jobs.NewDailyRefresh(app.analyzer, snapshotRepo, app.cfg.Watchlist, log)
	if err := sched.AddJob(refresh); err != nil {
		return fmt.Errorf("schedule daily refresh: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", app.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
