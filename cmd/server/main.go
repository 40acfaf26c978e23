package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Krushna4142/FitOS-dashboard/internal"
	"github.com/Krushna4142/FitOS-dashboard/internal/api"
	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/config"
	"github.com/Krushna4142/FitOS-dashboard/internal/mock"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
	"github.com/Krushna4142/FitOS-dashboard/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.StorageBackend == "file" {
		if dir := filepath.Dir(cfg.RecordsFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				logger.Fatalf("failed to create data dir: %v", err)
			}
		}
	}

	store, err := storage.NewRecordStore(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	journal := service.NewJournal(store, logger)
	mockSvc := mock.NewService(cfg.MockSeed)
	provider := auth.NewJWTProvider(cfg.JWTSecret, logger)

	app := api.NewApp(logger, journal, mockSvc, provider)
	router := api.NewRouter(app, cfg)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Infof("server listening on %s (backend=%s, env=%s)", cfg.HTTPAddr, cfg.StorageBackend, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown did not complete cleanly: %v", err)
	}
	if err := store.Close(); err != nil {
		logger.Errorf("storage close: %v", err)
	}
}
