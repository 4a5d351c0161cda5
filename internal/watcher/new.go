package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// New creates a Watcher on dir. Matching files reset a debounce timer of the
// given length; the handler runs when it fires.
func New(dir string, handler EventHandler, log logger.Logger, debounce time.Duration, accept Filter) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &implWatcher{
		dir:      dir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		debounce: debounce,
		accept:   accept,
	}, nil
}
