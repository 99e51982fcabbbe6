package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/beanbarn/storefront/internal/api"
	"github.com/beanbarn/storefront/internal/store"
	"github.com/beanbarn/storefront/pkg/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("STOREFRONT_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if cfg.Quiet {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	st := store.New(store.Config{
		MilestoneInterval: cfg.MilestoneInterval,
		RewardPercentage:  cfg.RewardPercentage,
	}, store.UUIDGenerator{}, store.DefaultCatalog())

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewRouter(st, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("HTTP server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting storefront",
		"addr", cfg.Addr,
		"milestone_interval", cfg.MilestoneInterval,
		"reward_percentage", cfg.RewardPercentage)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %s", err)
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
