package renderer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"github.com/nguyentantai21042004/quiz-reel/internal/repository"
)

// Process renders a stored video and records the outcome. On failure the record
// is marked as error and the render error is returned.
func (r *implRenderer) Process(ctx context.Context, videoID string) error {
	if r.specs == nil {
		return errors.New("process: no spec store configured")
	}

	spec, err := r.specs.GetRenderSpec(ctx, videoID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			r.markFailed(ctx, videoID)
		}
		return fmt.Errorf("load render spec: %w", err)
	}

	videoURL, err := r.Render(ctx, spec)
	if err != nil {
		r.markFailed(ctx, videoID)
		return err
	}

	if err := r.publisher.UpdateStatus(ctx, videoID, models.StatusVideoRendered, &videoURL); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (r *implRenderer) markFailed(ctx context.Context, videoID string) {
	if err := r.publisher.UpdateStatus(ctx, videoID, models.StatusError, nil); err != nil {
		r.logger.Error(ctx, "Failed to mark video %s as %s: %v", videoID, models.StatusError, err)
	}
}
