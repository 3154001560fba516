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

	"github.com/spf13/cobra"

	"github.com/KagiiKubu/Ithuba/internal/config"
	"github.com/KagiiKubu/Ithuba/internal/engine"
	"github.com/KagiiKubu/Ithuba/internal/logger"
	"github.com/KagiiKubu/Ithuba/internal/renderer"
	"github.com/KagiiKubu/Ithuba/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	ctx := context.Background()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Ithuba API")
	log.Info(ctx, "========================================")

	// Engine construction is the one hard failure: without a
	// generation model there is nothing to serve.
	eng, err := engine.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("construct engine: %w", err)
	}

	router := server.NewRouter(eng, renderer.New(), log)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on %s", cfg.Server.Addr)
	log.Info(ctx, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info(ctx, "Ithuba API stopped")
	return nil
}
