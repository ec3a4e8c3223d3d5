package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

// Start runs a batch immediately and then one per tick. Batches never overlap.
func (w *implWorker) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Render worker started (poll interval: %s, batch size: %d)", w.interval, w.batchSize)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error(ctx, "Poll failed: %v", err)
		}

		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Render worker stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce processes every pending record in one batch. A failing record does
// not stop the batch.
func (w *implWorker) RunOnce(ctx context.Context) (int, error) {
	videos, err := w.lister.ListByStatus(ctx, models.StatusCaptionsGenerated, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending videos: %w", err)
	}
	if len(videos) == 0 {
		w.logger.Debug(ctx, "No videos pending render")
		return 0, nil
	}

	w.logger.Info(ctx, "Found %d video(s) pending render", len(videos))

	done := 0
	for _, v := range videos {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := w.processor.Process(ctx, v.ID); err != nil {
			w.logger.Error(ctx, "Failed to render video %s: %v", v.ID, err)
			continue
		}
		done++
	}

	w.logger.Info(ctx, "Batch finished: %d/%d rendered", done, len(videos))
	return done, nil
}
