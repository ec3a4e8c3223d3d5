// Package publisher stores rendered videos and records render outcomes.
package publisher

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/quiz-reel/internal/repository"
	"github.com/nguyentantai21042004/quiz-reel/internal/storage"
)

var ErrNoStatusStore = errors.New("no status store configured")

// Publisher uploads rendered files and updates the status record of a video.
type Publisher interface {
	Upload(ctx context.Context, filePath, videoID string) (string, error)
	UpdateStatus(ctx context.Context, videoID, status string, videoURL *string) error
}

type implPublisher struct {
	uploader storage.Uploader
	videos   repository.VideoRepo
}

// New creates a Publisher. videos may be nil when only uploads are needed.
func New(uploader storage.Uploader, videos repository.VideoRepo) Publisher {
	return &implPublisher{
		uploader: uploader,
		videos:   videos,
	}
}

func (p *implPublisher) Upload(ctx context.Context, filePath, videoID string) (string, error) {
	return p.uploader.Upload(ctx, filePath, videoID)
}

func (p *implPublisher) UpdateStatus(ctx context.Context, videoID, status string, videoURL *string) error {
	if p.videos == nil {
		return ErrNoStatusStore
	}
	return p.videos.UpdateStatus(ctx, videoID, status, videoURL)
}
