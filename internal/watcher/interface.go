package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per quiet period with the last recording that arrived.
type EventHandler func(ctx context.Context, trigger string) error

// Filter reports whether a created file should trigger the handler.
type Filter func(path string) bool
