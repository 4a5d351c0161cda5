package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implWatcher struct {
	dir      string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	accept   Filter
}

// Start monitors the directory until ctx ends. The handler runs once no
// matching file was created or written for the debounce period. It runs on this
// goroutine, so runs never overlap; events that arrive meanwhile stay queued
// and are handled once it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (debounce: %s). Monitoring: %s", w.debounce, w.dir)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	pending := ""
	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// A file moved in arrives as Create; a file still being copied keeps sending Write.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.relevant(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			if event.Has(fsnotify.Create) {
				w.logger.Info(ctx, "New recording detected: %s", event.Name)
			}
			pending = event.Name
			resetTimer(timer, w.debounce)

		case <-timer.C:
			if pending == "" {
				continue
			}
			trigger := pending
			pending = ""
			if err := w.handler(ctx, trigger); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", w.dir, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// resetTimer restarts t, discarding a tick that fired but was not received yet.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// relevant skips hidden files, chunks the segmenter wrote and anything accept rejects.
func (w *implWatcher) relevant(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") || audio.IsPart(path) {
		return false
	}
	return w.accept == nil || w.accept(path)
}
