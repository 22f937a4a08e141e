// cmd/fundscope/serve.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fundscope/internal/api"
	"fundscope/internal/cache"
	"fundscope/internal/common/config"
	"fundscope/internal/common/logger"
	"fundscope/internal/common/metrics"
	"fundscope/internal/common/observability"
	"fundscope/internal/dataset"
	"fundscope/internal/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the dataset and start the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ds, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}
	stats := ds.Stats()
	metrics.DatasetCompanies.Set(float64(stats.Companies))
	metrics.DatasetMilestones.Set(float64(stats.Milestones))

	var results *cache.ResultCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		candidate := cache.New(client, cfg.Redis.CacheTTL(), log)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := candidate.Ping(pingCtx); err != nil {
			zapLog.Warn("redis unreachable, serving without result cache", zap.Error(err))
			client.Close()
		} else {
			results = candidate
			defer results.Close()
		}
		cancel()
	}

	server := api.New(engine.New(ds), results, obs, log)
	httpServer := server.NewHTTPServer(
		cfg.Server.Address,
		time.Duration(cfg.Server.ReadTimeout)*time.Second,
		time.Duration(cfg.Server.WriteTimeout)*time.Second,
	)

	errCh := make(chan error, 1)
	go func() {
		zapLog.Info("server listening",
			zap.String("address", cfg.Server.Address),
			zap.String("snapshot", ds.SnapshotID),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		zapLog.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zapLog.Info("server stopped")
	return nil
}

func loadDataset(cfg *config.Config, log logger.Logger) (*dataset.Dataset, error) {
	loader := dataset.NewLoader(log)

	if cfg.Dataset.Path != "" {
		return loader.Load(cfg.Dataset.Path)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Dataset.FetchTimeout)*time.Second)
	defer cancel()
	return loader.Fetch(ctx, cfg.Dataset.URL, time.Duration(cfg.Dataset.FetchTimeout)*time.Second)
}
