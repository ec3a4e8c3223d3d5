package watcher

import "context"

// Watcher monitors the spool directory for render requests
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one spooled request file
type EventHandler func(ctx context.Context, filePath string) error
