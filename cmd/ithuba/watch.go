package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KagiiKubu/Ithuba/internal/config"
	"github.com/KagiiKubu/Ithuba/internal/engine"
	"github.com/KagiiKubu/Ithuba/internal/logger"
	"github.com/KagiiKubu/Ithuba/internal/pipeline"
	"github.com/KagiiKubu/Ithuba/internal/renderer"
	"github.com/KagiiKubu/Ithuba/internal/watcher"
	"github.com/KagiiKubu/Ithuba/pkg/executor"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process voice notes dropped into the input folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch()
	},
}

func runWatch() error {
	ctx := context.Background()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Ithuba Voice Note Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Max concurrent processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	eng, err := engine.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("construct engine: %w", err)
	}

	pipe := pipeline.New(cfg, eng, renderer.New(), executor.New(), log)

	w, err := watcher.New(cfg.Paths.Input, pipe.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Ithuba pipeline stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
