package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trainer-market-service/internal/adapters/repositories"
	"trainer-market-service/internal/api"
	"trainer-market-service/internal/config"
	"trainer-market-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// main is the application composition root.
// It loads the dataset once through the configured repository, builds the
// explorer over it, and serves the HTTP API until SIGINT/SIGTERM.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, eris.ToString(err, true))
		os.Exit(1)
	}

	if err := config.InitLogger(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = zap.L().Sync() }()

	if envErr != nil {
		zap.L().Info("no .env file found (using environment variables)")
	}

	if err := run(cfg); err != nil {
		zap.L().Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := repositories.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeRepo()

	// The dataset is read once and never written for the life of the process.
	ds, err := repositories.LoadDataset(ctx, repo)
	if err != nil {
		return err
	}
	explorer := services.NewExplorer(ds)

	zap.L().Info("dataset loaded",
		zap.String("driver", cfg.Store.Driver),
		zap.Int("cities", ds.Len()),
		zap.Strings("states", ds.States()),
		zap.Int("recommended", len(explorer.Recommendations())),
	)

	router := api.NewRouter(explorer, api.RouterConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimit:       cfg.RateLimit.Requests,
		RateLimitWindow: time.Duration(cfg.RateLimit.WindowSecs) * time.Second,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSecs) * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- eris.Wrap(err, "server listen")
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSecs)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server shutdown")
	}
	return nil
}
