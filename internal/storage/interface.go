package storage

import "context"

// Uploader persists a rendered video and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filePath, videoID string) (string, error)
}
