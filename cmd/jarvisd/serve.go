package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jarvis-assistant/jarvisd/internal/api"
	"github.com/jarvis-assistant/jarvisd/internal/assistant"
	"github.com/jarvis-assistant/jarvisd/internal/backend"
	"github.com/jarvis-assistant/jarvisd/internal/config"
	"github.com/jarvis-assistant/jarvisd/internal/intel"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	if level == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}

func runServe() error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	kv := store.NewKV(db, cfg.QuotaBytes, logger)
	mem := memory.NewService(kv, logger)

	// Optional external services
	var sentiment intel.Sentiment
	if cfg.SentimentURL != "" {
		sentiment = intel.NewHTTPSentiment(cfg.SentimentURL)
	}
	engine := intel.NewEngine(sentiment, logger)

	var replyBackend assistant.ReplyBackend
	if cfg.BackendURL != "" {
		replyBackend = backend.NewClient(cfg.BackendURL, time.Duration(cfg.BackendTimeoutSecs)*time.Second)
	} else {
		logger.Info("no backend configured, running on local fallback replies")
	}

	asst := assistant.NewService(mem, engine, replyBackend, kv, logger)

	router := api.NewRouter(db, kv, mem, asst, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("jarvisd starting", "addr", addr, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-done:
	}

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
