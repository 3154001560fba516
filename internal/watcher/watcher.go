package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/KagiiKubu/Ithuba/internal/logger"
)

// settleDelay gives the producing process time to finish writing a
// freshly created file before it is picked up.
const settleDelay = 500 * time.Millisecond

var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".flac": true,
}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the drop folder for new voice notes and hands each
// one to the handler, at most maxConcurrent at a time.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: .mp3, .wav, .m4a, .ogg, .flac")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			if !w.isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New voice note detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return audioExtensions[ext]
}
