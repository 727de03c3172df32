package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	filter        Filter
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
	// settle is how long a new file is left alone before it is handled, so
	// writers have a chance to finish.
	settle time.Duration
}

// Start picks up files already sitting in the inbox, then monitors it for new
// ones until ctx is cancelled. In-flight handlers are awaited before it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan existing files: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx)

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.accepts(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)

			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return w.drain(ctx)
			}

			if !w.dispatch(ctx, event.Name) {
				return w.drain(ctx)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if !w.accepts(path) {
			continue
		}
		w.logger.Info(ctx, "Found pending file: %s", path)
		if !w.dispatch(ctx, path) {
			return ctx.Err()
		}
	}
	return nil
}

// dispatch hands path to the handler once a slot is free. It returns false if
// ctx ended while waiting for a slot.
func (w *implWatcher) dispatch(ctx context.Context, path string) bool {
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return false
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return true
}

func (w *implWatcher) drain(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return ctx.Err()
}

// accepts skips hidden and temporary files, then defers to the filter.
func (w *implWatcher) accepts(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return false
	}
	return w.filter(path)
}
