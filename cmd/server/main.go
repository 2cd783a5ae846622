package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/AnshRaj112/neurosphere-backend/internal/config"
	"github.com/AnshRaj112/neurosphere-backend/internal/logger"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/AnshRaj112/neurosphere-backend/internal/routes"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"github.com/AnshRaj112/neurosphere-backend/internal/storage"
	"github.com/AnshRaj112/neurosphere-backend/pkg/clientip"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logg.Sync()

	if envErr != nil {
		logg.Info("no .env file found, using process environment")
	}
	for _, w := range cfg.Warnings {
		logg.Warn("config fallback", zap.String("detail", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg.Info("opening storage", zap.String("backend", cfg.StorageBackend))
	backend, err := storage.New(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("failed to open storage", zap.Error(err))
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logg.Warn("closing storage", zap.Error(err))
		}
	}()

	clock := clockwork.NewRealClock()
	hub := notify.NewHub(clock, logg)

	// With Redis storage, notifications fan out across instances.
	var notifier notify.Notifier = hub
	if backend.Redis != nil {
		bridge := notify.NewRedisBridge(backend.Redis, hub, clock, logg)
		go bridge.Run(ctx)
		notifier = bridge
		logg.Info("notifications bridged through redis")
	}

	store := recordstore.New(backend.Port, logg)
	svc := services.New(store, clock, notifier, services.EditorConfig{
		AutosaveInterval: cfg.AutosaveInterval,
		InsightDelay:     cfg.InsightDelay,
		InsightMinLength: cfg.InsightMinLength,
	}, logg)

	r := routes.NewRouter(routes.Deps{
		Config:   cfg,
		Services: svc,
		Hub:      hub,
		Notifier: notifier,
		Storage:  backend.Name,
		ClientIP: clientip.New(cfg.TrustProxy),
		Logger:   logg,
	})
	if cfg.IsProduction() {
		logg.Info("production security enabled", zap.String("allowed_host", cfg.AllowedHost))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("NeuroSphere backend running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logg.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			logg.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Warn("graceful shutdown incomplete", zap.Error(err))
	}
	// Stop autosave and analysis timers before storage closes.
	svc.Editors.UnmountAll()
}
