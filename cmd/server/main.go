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

	"go.uber.org/zap"

	"capstone/internal/config"
	"capstone/internal/handler"
	"capstone/internal/repo"
	"capstone/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := repo.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	if n, err := db.CleanExpiredSessions(context.Background()); err != nil {
		logger.Warn("clean expired sessions", zap.Error(err))
	} else if n > 0 {
		logger.Info("removed expired sessions", zap.Int64("count", n))
	}

	files := upload.NewStore(cfg.ImageDir(), cfg.PDFDir())
	h := handler.New(db, files, cfg.TemplatesDir, cfg.SessionSecret, cfg.CookieDomain, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("addr", "http://"+cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
