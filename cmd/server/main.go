package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todoboard/internal/api"
	"todoboard/internal/config"
	"todoboard/internal/db"
	"todoboard/internal/logger"
	"todoboard/pkg/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("init logger", zap.Error(err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var tasks task.Store
	if cfg.DB.DSN != "" {
		pool, err := db.Connect(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal("connect", zap.Error(err))
		}
		defer pool.Close()
		tasks = task.NewPgStore(pool)
	} else {
		log.Info("no database configured, using in-memory store")
		tasks = task.NewMemStore()
	}

	// Ensure tables exist
	if err := tasks.EnsureTable(ctx); err != nil {
		log.Fatal("ensure todos table", zap.Error(err))
	}

	server := api.New(tasks, log, api.WithRateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("todoboard service listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("listen", zap.Error(err))
		os.Exit(1)
	}
}
